package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/extraction"
)

// processExtractReq binds the request body and converts it to the use-case input.
func (h *handler) processExtractReq(c *gin.Context) (extraction.ExtractInput, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		return extraction.ExtractInput{}, errTextRequired
	}
	in, err := req.toInput()
	if err != nil {
		return in, errInvalidReferenceDate.Wrap(err)
	}
	return in, nil
}

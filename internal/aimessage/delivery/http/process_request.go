package http

import "github.com/gin-gonic/gin"

// processCreateReq binds and validates the create message body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidMessage.Wrap(err)
	}
	if err := req.validate(); err != nil {
		return req, errInvalidMessage.Wrap(err)
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidMessage.Wrap(err)
	}
	return req, nil
}

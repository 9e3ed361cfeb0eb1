package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"taskboard/internal/aimessage"
	"taskboard/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from text
// @Description Sends free-form text to the language model and returns the validated tasks it found.
// @Description Relative dates resolve against referenceDate, or today when it is omitted.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Text to analyse"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Text content is required"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     500 {object} response.Resp "Failed to extract tasks"
// @Router      /api/extract-tasks [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.record(ctx, input.Text, len(output.Tasks))
	response.OK(c, h.newExtractResp(output))
}

// record appends the exchange to the message history. Failures are logged only.
func (h *handler) record(ctx context.Context, text string, n int) {
	if h.messages == nil {
		return
	}
	exchange := []aimessage.CreateInput{
		{Role: aimessage.RoleUser, Content: text},
		{Role: aimessage.RoleAssistant, Content: fmt.Sprintf("Extracted %d task(s)", n)},
	}
	for _, in := range exchange {
		if _, err := h.messages.Create(ctx, in); err != nil {
			h.l.Warnf(ctx, "extraction.delivery.record: %v", err)
			return
		}
	}
}

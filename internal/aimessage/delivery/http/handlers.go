package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/pkg/response"
)

// List godoc
// @Summary     List AI messages
// @Description Returns the assistant conversation history, newest first.
// @Tags        AI Messages
// @Produce     json
// @Param       limit query int false "Maximum number of messages"
// @Success     200 {array}  messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/ai-messages [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	messages, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, errFetchFailed))
		return
	}

	response.OK(c, h.newListResp(messages))
}

// Create godoc
// @Summary     Append an AI message
// @Tags        AI Messages
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Message"
// @Success     201 {object} messageResp
// @Failure     400 {object} response.Resp "Invalid message data"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/ai-messages [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, errCreateFailed))
		return
	}

	response.Created(c, newMessageResp(m))
}

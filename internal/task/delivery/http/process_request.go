package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processID parses the :id path parameter as a positive integer.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// processCreateReq binds the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidTask.Wrap(err)
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidTask.Wrap(err)
	}
	return req, nil
}

// processUpdateReq binds the partial update body and URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidTask.Wrap(err)
	}
	req.ID = id
	return req, nil
}

// processBulkReq binds the bulk import body.
func (h *handler) processBulkReq(c *gin.Context) (bulkReq, error) {
	var req bulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidTask.Wrap(err)
	}
	return req, nil
}

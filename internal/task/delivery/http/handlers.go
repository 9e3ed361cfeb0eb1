package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns every task, newest first, optionally filtered by status.
// @Tags        Tasks
// @Produce     json
// @Param       status query string false "Filter by status (todo/in_progress/completed)"
// @Success     200 {array}  taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, errFetchAll))
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Invalid task ID"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, errFetchOne))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Create godoc
// @Summary     Create a task
// @Description Status defaults to todo and priority to medium.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.Resp "Invalid task data"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, errCreate))
		return
	}

	response.Created(c, newTaskResp(t))
}

// CreateBulk godoc
// @Summary     Import extracted tasks
// @Description Stores the tasks returned by /api/extract-tasks and, when Google Calendar is configured,
// @Description creates an all-day event for each task with a due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body bulkReq true "Extracted tasks"
// @Success     201 {object} bulkResp
// @Failure     400 {object} response.Resp "Invalid task data"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/bulk [POST]
func (h *handler) CreateBulk(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBulkReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.CreateBulk(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateBulk: %v", err)
		response.Error(c, h.mapError(err, errCreateBulk))
		return
	}

	response.Created(c, h.newBulkResp(out))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update: omitted fields are unchanged, an empty dueDate clears it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, errUpdate))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Param       id path int true "Task ID"
// @Success     204
// @Failure     400 {object} response.Resp "Invalid task ID"
// @Failure     404 {object} response.Resp "Task not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err, errDelete))
		return
	}

	response.NoContent(c)
}

// Stats godoc
// @Summary     Task statistics
// @Description Counts tasks per status. completionRate is a rounded percentage.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/task-stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err, errStats))
		return
	}

	response.OK(c, h.newStatsResp(s))
}

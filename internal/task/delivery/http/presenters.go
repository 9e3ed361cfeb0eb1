package http

import (
	"strconv"

	"taskboard/internal/extraction"
	"taskboard/internal/task"
	"taskboard/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	Status        string `json:"status"   enums:"todo,in_progress,completed"`
	Priority      string `json:"priority" enums:"low,medium,high"`
	DueDate       string `json:"dueDate"  example:"2024-01-12"`
	Category      string `json:"category"`
	IsAIGenerated bool   `json:"isAiGenerated"`
	Source        string `json:"source"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:         r.Title,
		Description:   r.Description,
		Status:        task.Status(r.Status),
		Priority:      task.Priority(r.Priority),
		DueDate:       r.DueDate,
		Category:      r.Category,
		IsAIGenerated: r.IsAIGenerated,
		Source:        r.Source,
	}
}

type listReq struct {
	Status string `form:"status"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Status: task.Status(r.Status)}
}

type updateReq struct {
	ID          int64   `json:"-"` // populated from URI param
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"   enums:"todo,in_progress,completed"`
	Priority    *string `json:"priority" enums:"low,medium,high"`
	DueDate     *string `json:"dueDate"`
	Category    *string `json:"category"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Category:    r.Category,
	}
	if r.Status != nil {
		s := task.Status(*r.Status)
		in.Status = &s
	}
	if r.Priority != nil {
		p := task.Priority(*r.Priority)
		in.Priority = &p
	}
	return in
}

type bulkReq struct {
	Tasks  []extraction.ExtractedTask `json:"tasks" binding:"required"`
	Source string                     `json:"source"`
}

func (r bulkReq) toInput() task.CreateBulkInput {
	tasks := make([]task.BulkTask, len(r.Tasks))
	for i, et := range r.Tasks {
		tasks[i] = task.BulkTask{
			Title:       et.Title,
			Description: et.Description,
			DueDate:     et.DueDate,
			Priority:    task.Priority(et.Priority),
			Category:    et.Category,
		}
	}
	return task.CreateBulkInput{Tasks: tasks, Source: r.Source}
}

// --- Response DTOs ---

type taskResp struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Status        string            `json:"status"`
	Priority      string            `json:"priority"`
	DueDate       *string           `json:"dueDate"`
	Category      string            `json:"category"`
	CreatedAt     response.DateTime `json:"createdAt" swaggertype:"string"`
	IsAIGenerated bool              `json:"isAiGenerated"`
	Source        string            `json:"source"`
}

func newTaskResp(t task.Task) taskResp {
	resp := taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        string(t.Status),
		Priority:      string(t.Priority),
		Category:      t.Category,
		CreatedAt:     response.DateTime(t.CreatedAt),
		IsAIGenerated: t.IsAIGenerated,
		Source:        t.Source,
	}
	if t.DueDate != "" {
		due := t.DueDate
		resp.DueDate = &due
	}
	return resp
}

func (h *handler) newListResp(tasks []task.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type statsResp struct {
	Total          int `json:"total"`
	Todo           int `json:"todo"`
	InProgress     int `json:"inProgress"`
	Completed      int `json:"completed"`
	CompletionRate int `json:"completionRate"`
}

func (h *handler) newStatsResp(s task.Stats) statsResp {
	return statsResp{
		Total:          s.Total,
		Todo:           s.Todo,
		InProgress:     s.InProgress,
		Completed:      s.Completed,
		CompletionRate: s.CompletionRate,
	}
}

type bulkResp struct {
	Tasks []taskResp `json:"tasks"`
	// CalendarLinks is keyed by task id.
	CalendarLinks map[string]string `json:"calendarLinks"`
}

func (h *handler) newBulkResp(out task.CreateBulkOutput) bulkResp {
	links := make(map[string]string, len(out.CalendarLinks))
	for id, link := range out.CalendarLinks {
		links[strconv.FormatInt(id, 10)] = link
	}
	return bulkResp{Tasks: h.newListResp(out.Tasks), CalendarLinks: links}
}

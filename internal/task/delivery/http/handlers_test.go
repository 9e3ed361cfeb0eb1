package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"taskboard/internal/task"
	taskSQLite "taskboard/internal/task/repository/sqlite"
	"taskboard/internal/task/usecase"
	"taskboard/pkg/gcalendar"
	"taskboard/pkg/log"
	"taskboard/pkg/response"
	"taskboard/pkg/sqlite"
)

type stubCalendar struct{}

func (stubCalendar) CreateDueDateEvent(ctx context.Context, req gcalendar.DueDateEventRequest) (*gcalendar.Event, error) {
	return &gcalendar.Event{HtmlLink: "https://calendar.example/" + req.Date}, nil
}

func newRouter(t *testing.T, cal task.Calendar) *gin.Engine {
	t.Helper()
	db, err := sqlite.Connect(context.Background(), sqlite.MemoryPath)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	l := log.NewNop()
	uc := usecase.New(l, taskSQLite.New(db, l), cal, "primary")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(l, uc))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}

func TestTaskLifecycle(t *testing.T) {
	r := newRouter(t, nil)

	w := do(r, http.MethodPost, "/api/tasks", `{"title":"Write report","priority":"high","dueDate":"2024-01-12"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	created := decode[map[string]any](t, w)
	if created["status"] != "todo" || created["dueDate"] != "2024-01-12" || created["isAiGenerated"] != false {
		t.Errorf("unexpected created task: %v", created)
	}
	id := int(created["id"].(float64))

	w = do(r, http.MethodGet, "/api/tasks/1", "")
	if w.Code != http.StatusOK || id != 1 {
		t.Fatalf("detail status = %d id = %d", w.Code, id)
	}

	w = do(r, http.MethodPatch, "/api/tasks/1", `{"status":"completed"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	if got := decode[map[string]any](t, w); got["status"] != "completed" || got["title"] != "Write report" {
		t.Errorf("unexpected update: %v", got)
	}

	w = do(r, http.MethodGet, "/api/task-stats", "")
	stats := decode[statsResp](t, w)
	if stats != (statsResp{Total: 1, Completed: 1, CompletionRate: 100}) {
		t.Errorf("unexpected stats: %+v", stats)
	}

	w = do(r, http.MethodDelete, "/api/tasks/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = do(r, http.MethodGet, "/api/tasks", "")
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected empty list, got %d %s", w.Code, w.Body.String())
	}
}

func TestTaskErrors(t *testing.T) {
	r := newRouter(t, nil)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{name: "non-numeric id", method: http.MethodGet, path: "/api/tasks/abc", wantStatus: http.StatusBadRequest, wantMsg: "Invalid task ID"},
		{name: "zero id", method: http.MethodDelete, path: "/api/tasks/0", wantStatus: http.StatusBadRequest, wantMsg: "Invalid task ID"},
		{name: "missing task", method: http.MethodGet, path: "/api/tasks/42", wantStatus: http.StatusNotFound, wantMsg: "Task not found"},
		{name: "patch missing task", method: http.MethodPatch, path: "/api/tasks/42", body: `{"title":"x"}`, wantStatus: http.StatusNotFound, wantMsg: "Task not found"},
		{name: "delete missing task", method: http.MethodDelete, path: "/api/tasks/42", wantStatus: http.StatusNotFound, wantMsg: "Task not found"},
		{name: "missing title", method: http.MethodPost, path: "/api/tasks", body: `{"priority":"low"}`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid task data"},
		{name: "bad priority", method: http.MethodPost, path: "/api/tasks", body: `{"title":"x","priority":"urgent"}`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid task data"},
		{name: "bad status filter", method: http.MethodGet, path: "/api/tasks?status=archived", wantStatus: http.StatusBadRequest, wantMsg: "Invalid task data"},
		{name: "empty bulk", method: http.MethodPost, path: "/api/tasks/bulk", body: `{"tasks":[]}`, wantStatus: http.StatusBadRequest, wantMsg: "Invalid task data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if got := decode[response.Resp](t, w); got.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestCreateBulk(t *testing.T) {
	r := newRouter(t, stubCalendar{})

	body := `{"tasks":[
		{"title":"Submit quarterly report","dueDate":"2024-01-12","priority":"high","category":"work"},
		{"title":"Tidy desk","priority":"low"}
	],"source":"meeting notes"}`

	w := do(r, http.MethodPost, "/api/tasks/bulk", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var got struct {
		Tasks []struct {
			ID            int64   `json:"id"`
			DueDate       *string `json:"dueDate"`
			IsAIGenerated bool    `json:"isAiGenerated"`
			Source        string  `json:"source"`
		} `json:"tasks"`
		CalendarLinks map[string]string `json:"calendarLinks"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Tasks) != 2 || !got.Tasks[0].IsAIGenerated || got.Tasks[0].Source != "meeting notes" {
		t.Errorf("unexpected tasks: %+v", got.Tasks)
	}
	if got.Tasks[1].DueDate != nil {
		t.Errorf("expected null dueDate, got %q", *got.Tasks[1].DueDate)
	}
	if len(got.CalendarLinks) != 1 || got.CalendarLinks["1"] != "https://calendar.example/2024-01-12" {
		t.Errorf("unexpected calendar links: %v", got.CalendarLinks)
	}
}

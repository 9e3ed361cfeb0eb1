package usecase

import (
	"context"
	"errors"
	"time"

	"taskboard/internal/task"
	repo "taskboard/internal/task/repository"
	"taskboard/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errDB = errors.New("database is locked")

// memRepo is an in-memory repository.Repository.
type memRepo struct {
	tasks  map[int64]task.Task
	nextID int64
	fail   bool
}

func newMemRepo() *memRepo {
	return &memRepo{tasks: make(map[int64]task.Task)}
}

func (m *memRepo) insert(opt repo.CreateTaskOptions) task.Task {
	m.nextID++
	t := task.Task{
		ID:            m.nextID,
		Title:         opt.Title,
		Description:   opt.Description,
		Status:        opt.Status,
		Priority:      opt.Priority,
		DueDate:       opt.DueDate,
		Category:      opt.Category,
		CreatedAt:     opt.CreatedAt,
		IsAIGenerated: opt.IsAIGenerated,
		Source:        opt.Source,
	}
	m.tasks[t.ID] = t
	return t
}

func (m *memRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	if m.fail {
		return task.Task{}, repo.ErrFailedToInsert
	}
	return m.insert(opt), nil
}

func (m *memRepo) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]task.Task, error) {
	if m.fail {
		return nil, repo.ErrFailedToInsert
	}
	out := make([]task.Task, 0, len(opts))
	for _, opt := range opts {
		out = append(out, m.insert(opt))
	}
	return out, nil
}

func (m *memRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (task.Task, error) {
	if m.fail {
		return task.Task{}, repo.ErrFailedToGet
	}
	return m.tasks[opt.ID], nil
}

func (m *memRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	if m.fail {
		return nil, repo.ErrFailedToList
	}
	var out []task.Task
	for id := int64(1); id <= m.nextID; id++ {
		t, ok := m.tasks[id]
		if ok && (opt.Status == "" || t.Status == opt.Status) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	if m.fail {
		return task.Task{}, repo.ErrFailedToUpdate
	}
	t, ok := m.tasks[opt.ID]
	if !ok {
		return task.Task{}, nil
	}
	t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.Category =
		opt.Title, opt.Description, opt.Status, opt.Priority, opt.DueDate, opt.Category
	m.tasks[t.ID] = t
	return t, nil
}

func (m *memRepo) DeleteTask(ctx context.Context, id int64) error {
	if m.fail {
		return repo.ErrFailedToDelete
	}
	delete(m.tasks, id)
	return nil
}

func (m *memRepo) CountByStatus(ctx context.Context) (map[task.Status]int, error) {
	if m.fail {
		return nil, repo.ErrFailedToList
	}
	counts := make(map[task.Status]int)
	for _, t := range m.tasks {
		counts[t.Status]++
	}
	return counts, nil
}

type fakeCalendar struct {
	requests []gcalendar.DueDateEventRequest
	failOn   string
}

func (f *fakeCalendar) CreateDueDateEvent(ctx context.Context, req gcalendar.DueDateEventRequest) (*gcalendar.Event, error) {
	if req.Summary == f.failOn {
		return nil, errors.New("calendar quota exceeded")
	}
	f.requests = append(f.requests, req)
	return &gcalendar.Event{ID: "evt", HtmlLink: "https://calendar.google.com/event?eid=" + req.Date, Date: req.Date}, nil
}

var fixedNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(r *memRepo, cal task.Calendar) *implUseCase {
	return &implUseCase{
		l:          &mockLogger{},
		repo:       r,
		calendar:   cal,
		calendarID: "primary",
		now:        func() time.Time { return fixedNow },
	}
}

func ptr[T any](v T) *T { return &v }

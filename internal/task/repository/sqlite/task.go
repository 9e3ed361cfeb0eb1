package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskboard/internal/task"
	repo "taskboard/internal/task/repository"
)

const insertTaskQuery = `
	INSERT INTO tasks (title, description, status, priority, due_date, category, created_at, is_ai_generated, source)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING ` + taskColumns

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertTask(ctx context.Context, q execer, opt repo.CreateTaskOptions) (task.Task, error) {
	return scanTask(q.QueryRowContext(ctx, insertTaskQuery,
		opt.Title,
		opt.Description,
		string(opt.Status),
		string(opt.Priority),
		nullableDate(opt.DueDate),
		opt.Category,
		opt.CreatedAt.UTC().Format(timeLayout),
		boolToInt(opt.IsAIGenerated),
		opt.Source,
	))
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	t, err := insertTask(ctx, r.db, opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// CreateTasks inserts every task in one transaction.
func (r *implRepository) CreateTasks(ctx context.Context, opts []repo.CreateTaskOptions) ([]task.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	tasks := make([]task.Task, 0, len(opts))
	for i, opt := range opts {
		t, err := insertTask(ctx, tx, opt)
		if err != nil {
			r.l.Errorf(ctx, "%s row %d: %v", r.dsn("CreateTasks"), i, err)
			return nil, repo.ErrFailedToInsert
		}
		tasks = append(tasks, t)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateTasks"), err)
		return nil, repo.ErrFailedToInsert
	}
	return tasks, nil
}

// GetOneTask retrieves a single Task. Returns a zero-value Task (ID == 0) when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (task.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ? LIMIT 1`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns every Task matching the filter, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask updates a Task by ID and returns the updated entity.
// Returns a zero-value Task when the row does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	query := `
		UPDATE tasks
		SET title = ?, description = ?, status = ?, priority = ?, due_date = ?, category = ?
		WHERE id = ?
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title,
		opt.Description,
		string(opt.Status),
		string(opt.Priority),
		nullableDate(opt.DueDate),
		opt.Category,
		opt.ID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// CountByStatus returns the number of tasks in each status.
func (r *implRepository) CountByStatus(ctx context.Context) (map[task.Status]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountByStatus"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	counts := make(map[task.Status]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("CountByStatus"), err)
			return nil, repo.ErrFailedToList
		}
		counts[task.Status(status)] = n
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("CountByStatus"), err)
		return nil, repo.ErrFailedToList
	}
	return counts, nil
}

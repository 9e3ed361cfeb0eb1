package sqlite

import (
	"context"
	"time"

	"taskboard/internal/aimessage"
	repo "taskboard/internal/aimessage/repository"
)

const timeLayout = time.RFC3339Nano

// CreateMessage inserts a message and returns it with its id.
func (r *implRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (aimessage.Message, error) {
	const query = `INSERT INTO ai_messages (role, content, timestamp) VALUES (?, ?, ?)`

	ts := opt.Timestamp.UTC()
	res, err := r.db.ExecContext(ctx, query, string(opt.Role), opt.Content, ts.Format(timeLayout))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return aimessage.Message{}, repo.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s LastInsertId: %v", r.dsn("CreateMessage"), err)
		return aimessage.Message{}, repo.ErrFailedToInsert
	}

	return aimessage.Message{ID: id, Role: opt.Role, Content: opt.Content, Timestamp: ts}, nil
}

// ListMessages returns messages newest first, at most opt.Limit when positive.
func (r *implRepository) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]aimessage.Message, error) {
	query := `SELECT id, role, content, timestamp FROM ai_messages ORDER BY timestamp DESC, id DESC`
	var args []any
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	messages := []aimessage.Message{}
	for rows.Next() {
		var (
			m    aimessage.Message
			role string
			ts   string
		)
		if err := rows.Scan(&m.ID, &role, &m.Content, &ts); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMessages"), err)
			return nil, repo.ErrFailedToList
		}
		m.Role = aimessage.Role(role)
		m.Timestamp, _ = time.Parse(timeLayout, ts)
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	return messages, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/task"
	repo "taskboard/internal/task/repository"
	"taskboard/pkg/gcalendar"
)

// CreateBulk inserts extracted tasks in one transaction, then creates a
// calendar event for each task that has a due date.
func (uc *implUseCase) CreateBulk(ctx context.Context, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	if len(input.Tasks) == 0 {
		return task.CreateBulkOutput{}, task.ErrEmptyBulk
	}

	source := strings.TrimSpace(input.Source)
	if source == "" {
		source = task.DefaultBulkSource
	}

	opts := make([]repo.CreateTaskOptions, 0, len(input.Tasks))
	for i, bt := range input.Tasks {
		in, err := validateNew(task.CreateInput{
			Title:         bt.Title,
			Description:   bt.Description,
			Status:        task.StatusTodo,
			Priority:      bt.Priority,
			DueDate:       bt.DueDate,
			Category:      bt.Category,
			IsAIGenerated: true,
			Source:        source,
		})
		if err != nil {
			return task.CreateBulkOutput{}, fmt.Errorf("task %d: %w", i, err)
		}
		opts = append(opts, uc.createOptions(in))
	}

	created, err := uc.repo.CreateTasks(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateBulk CreateTasks: %v", err)
		return task.CreateBulkOutput{}, err
	}
	uc.l.Infof(ctx, "CreateBulk: created %d tasks source=%s", len(created), source)

	links := make(map[int64]string)
	for _, t := range created {
		if link := uc.tryCreateCalendarEvent(ctx, t); link != "" {
			links[t.ID] = link
		}
	}

	return task.CreateBulkOutput{Tasks: created, CalendarLinks: links}, nil
}

// tryCreateCalendarEvent returns the event link, or "" when there is no
// calendar, no due date, or the call fails.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t task.Task) string {
	if uc.calendar == nil || t.DueDate == "" {
		return ""
	}

	event, err := uc.calendar.CreateDueDateEvent(ctx, gcalendar.DueDateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: strings.TrimSpace(fmt.Sprintf("%s\n\nPriority: %s", t.Description, t.Priority)),
		Date:        t.DueDate,
	})
	if err != nil {
		uc.l.Warnf(ctx, "CreateBulk: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}
	return event.HtmlLink
}

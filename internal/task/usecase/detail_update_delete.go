package usecase

import (
	"context"
	"strings"

	"taskboard/internal/task"
	repo "taskboard/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (task.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.Task{}, err
	}
	if t.ID == 0 {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Update applies a partial update. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.Task, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.Task{}, err
	}
	if existing.ID == 0 {
		return task.Task{}, task.ErrTaskNotFound
	}

	opt, err := uc.merge(existing, input)
	if err != nil {
		return task.Task{}, err
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.Task{}, err
	}
	if t.ID == 0 {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.Detail(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

// merge overlays the set fields of input on existing.
func (uc *implUseCase) merge(existing task.Task, input task.UpdateInput) (repo.UpdateTaskOptions, error) {
	opt := repo.UpdateTaskOptions{
		ID:          existing.ID,
		Title:       existing.Title,
		Description: existing.Description,
		Status:      existing.Status,
		Priority:    existing.Priority,
		DueDate:     existing.DueDate,
		Category:    existing.Category,
	}

	if input.Title != nil {
		opt.Title = strings.TrimSpace(*input.Title)
		if opt.Title == "" {
			return opt, task.ErrEmptyTitle
		}
	}
	if input.Description != nil {
		opt.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return opt, task.ErrInvalidStatus
		}
		opt.Status = *input.Status
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return opt, task.ErrInvalidPriority
		}
		opt.Priority = *input.Priority
	}
	if input.DueDate != nil {
		due, err := normalizeDueDate(*input.DueDate)
		if err != nil {
			return opt, err
		}
		opt.DueDate = due
	}
	if input.Category != nil {
		opt.Category = *input.Category
	}
	return opt, nil
}

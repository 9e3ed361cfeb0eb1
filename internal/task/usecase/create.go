package usecase

import (
	"context"

	"taskboard/internal/task"
	repo "taskboard/internal/task/repository"
)

// Create validates and inserts a new Task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.Task, error) {
	in, err := validateNew(input)
	if err != nil {
		return task.Task{}, err
	}

	t, err := uc.repo.CreateTask(ctx, uc.createOptions(in))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.Task{}, err
	}
	return t, nil
}

func (uc *implUseCase) createOptions(in task.CreateInput) repo.CreateTaskOptions {
	return repo.CreateTaskOptions{
		Title:         in.Title,
		Description:   in.Description,
		Status:        in.Status,
		Priority:      in.Priority,
		DueDate:       in.DueDate,
		Category:      in.Category,
		CreatedAt:     uc.now(),
		IsAIGenerated: in.IsAIGenerated,
		Source:        in.Source,
	}
}

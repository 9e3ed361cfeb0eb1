package usecase

import (
	"context"

	"taskboard/internal/task"
	repo "taskboard/internal/task/repository"
)

// List returns every Task, optionally filtered by status.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) ([]task.Task, error) {
	if input.Status != "" && !input.Status.Valid() {
		return nil, task.ErrInvalidStatus
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

// Stats counts tasks per status and derives the completion rate.
func (uc *implUseCase) Stats(ctx context.Context) (task.Stats, error) {
	counts, err := uc.repo.CountByStatus(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats CountByStatus: %v", err)
		return task.Stats{}, err
	}

	s := task.Stats{
		Todo:       counts[task.StatusTodo],
		InProgress: counts[task.StatusInProgress],
		Completed:  counts[task.StatusCompleted],
	}
	for _, n := range counts {
		s.Total += n
	}
	s.CompletionRate = completionRate(s.Completed, s.Total)
	return s, nil
}

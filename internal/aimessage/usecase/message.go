package usecase

import (
	"context"
	"strings"

	"taskboard/internal/aimessage"
	repo "taskboard/internal/aimessage/repository"
)

// Create validates and stores a message stamped with the current time.
func (uc *implUseCase) Create(ctx context.Context, input aimessage.CreateInput) (aimessage.Message, error) {
	if !input.Role.Valid() {
		return aimessage.Message{}, aimessage.ErrInvalidRole
	}
	if strings.TrimSpace(input.Content) == "" {
		return aimessage.Message{}, aimessage.ErrEmptyContent
	}

	m, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		Role:      input.Role,
		Content:   input.Content,
		Timestamp: uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "aimessage.usecase.Create: %v", err)
		return aimessage.Message{}, err
	}
	return m, nil
}

// List returns the newest messages first.
func (uc *implUseCase) List(ctx context.Context, input aimessage.ListInput) ([]aimessage.Message, error) {
	messages, err := uc.repo.ListMessages(ctx, repo.ListMessagesOptions{Limit: input.Limit})
	if err != nil {
		uc.l.Errorf(ctx, "aimessage.usecase.List: %v", err)
		return nil, err
	}
	return messages, nil
}

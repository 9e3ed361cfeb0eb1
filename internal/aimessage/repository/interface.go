package repository

import (
	"context"

	"taskboard/internal/aimessage"
)

// Repository is the data store of the aimessage domain.
type Repository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (aimessage.Message, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]aimessage.Message, error)
}

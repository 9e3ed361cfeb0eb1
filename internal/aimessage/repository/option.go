package repository

import (
	"time"

	"taskboard/internal/aimessage"
)

type CreateMessageOptions struct {
	Role      aimessage.Role
	Content   string
	Timestamp time.Time
}

// ListMessagesOptions lists newest first.
type ListMessagesOptions struct {
	Limit int
}

package aimessage

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// Message is one entry of the assistant conversation history.
type Message struct {
	ID        int64
	Role      Role
	Content   string
	Timestamp time.Time
}

// --- UseCase Inputs ---

type CreateInput struct {
	Role    Role
	Content string
}

type ListInput struct {
	// Limit <= 0 returns every message.
	Limit int
}

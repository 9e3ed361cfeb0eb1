package http

import (
	"taskboard/internal/aimessage"
	"taskboard/internal/extraction"
	"taskboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc extraction.UseCase
	// messages records the conversation. Nil disables recording.
	messages aimessage.UseCase
}

// New creates a new HTTP handler for the extraction domain.
func New(l log.Logger, uc extraction.UseCase, messages aimessage.UseCase) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		messages: messages,
	}
}

package http

import (
	"taskboard/internal/aimessage"
	"taskboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc aimessage.UseCase
}

// New creates a new HTTP handler for the aimessage domain.
func New(l log.Logger, uc aimessage.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

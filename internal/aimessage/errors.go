package aimessage

import "errors"

var (
	ErrInvalidRole  = errors.New("role must be one of user, assistant, system")
	ErrEmptyContent = errors.New("content is required")
)

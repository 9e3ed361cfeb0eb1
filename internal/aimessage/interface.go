package aimessage

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Message, error)
	List(ctx context.Context, input ListInput) ([]Message, error)
}

package usecase

import (
	"time"

	"taskboard/internal/aimessage"
	"taskboard/internal/aimessage/repository"
	"taskboard/pkg/log"
)

// implUseCase is the private implementation of aimessage.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

// New creates a new aimessage UseCase implementation.
func New(repo repository.Repository, l log.Logger) aimessage.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}

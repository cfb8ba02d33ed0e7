package ports

import (
	"context"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/google/uuid"
)

type ResultRepository interface {
	// Save persists the result unless one already exists for the
	// session, in which case the previously stored row is returned.
	Save(ctx context.Context, result *domain.Result) (*domain.Result, error)
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.Result, error)
	ExistsBySessionID(ctx context.Context, sessionID uuid.UUID) (bool, error)
}

type ResultService interface {
	// Compute persists the final tally for a closed session at most
	// once and returns the stored result on every call.
	Compute(ctx context.Context, session *domain.Session) (*domain.Result, error)
	// Live computes the current tally without persisting it.
	Live(ctx context.Context, session *domain.Session) (*domain.Result, error)
	// ResultFor returns the final result for a closed session
	// (computing it lazily if absent) or a live tally for an open one.
	ResultFor(ctx context.Context, sessionID string) (*domain.Result, error)
}

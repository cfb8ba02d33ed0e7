package ports

import (
	"context"
	"time"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/google/uuid"
)

type SessionRepository interface {
	// Save inserts the session. It must fail with
	// domain.ErrSessionAlreadyOpen when an unexpired, unclosed session
	// already exists for the same agenda, checked atomically.
	Save(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Session, error)
	// SetClosed flips the closed flag. Flipping an already-closed
	// session is harmless.
	SetClosed(ctx context.Context, id uuid.UUID) error
	// ListExpiredOpen returns sessions with closes_at <= now that are
	// not yet closed.
	ListExpiredOpen(ctx context.Context, now time.Time) ([]*domain.Session, error)
}

type OpenSessionInput struct {
	AgendaID uuid.UUID
	// DurationMinutes is optional; nil means the default window.
	DurationMinutes *int
}

type SessionService interface {
	Open(ctx context.Context, input OpenSessionInput) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context, page int) ([]*domain.Session, error)
	Close(ctx context.Context, id string) error
}

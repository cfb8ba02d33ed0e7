package services

import (
	"context"
	"log"
	"time"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
	"github.com/google/uuid"
)

type sessionService struct {
	sessionRepo ports.SessionRepository
	agendaRepo  ports.AgendaRepository
	results     ports.ResultService
}

func NewSessionService(sessionRepo ports.SessionRepository, agendaRepo ports.AgendaRepository, results ports.ResultService) ports.SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		agendaRepo:  agendaRepo,
		results:     results,
	}
}

func (s *sessionService) Open(ctx context.Context, input ports.OpenSessionInput) (*domain.Session, error) {
	if _, err := s.agendaRepo.GetByID(ctx, input.AgendaID); err != nil {
		return nil, err
	}

	duration := domain.DefaultSessionDuration
	if input.DurationMinutes != nil {
		if *input.DurationMinutes <= 0 {
			return nil, domain.ErrInvalidDuration
		}
		duration = time.Duration(*input.DurationMinutes) * time.Minute
	}

	now := time.Now()
	session := &domain.Session{
		ID:       uuid.New(),
		AgendaID: input.AgendaID,
		OpenedAt: now,
		ClosesAt: now.Add(duration),
		Closed:   false,
	}

	// The single-open-session invariant is enforced atomically by the
	// repository insert, so concurrent opens for the same agenda cannot
	// both succeed.
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("voting session %s opened for agenda %s, closes at %s", session.ID, session.AgendaID, session.ClosesAt)
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	return s.sessionRepo.GetByID(ctx, sessionID)
}

func (s *sessionService) List(ctx context.Context, page int) ([]*domain.Session, error) {
	if page < 1 {
		page = 1
	}
	return s.sessionRepo.List(ctx, pageSize, (page-1)*pageSize)
}

// Close flips the session to closed and computes the final result. It is
// idempotent: a direct caller and the expiry sweeper may race to close
// the same session and the loser becomes a no-op.
func (s *sessionService) Close(ctx context.Context, id string) error {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if session.Closed {
		log.Printf("voting session %s already closed", session.ID)
		return nil
	}

	if err := s.sessionRepo.SetClosed(ctx, session.ID); err != nil {
		return err
	}
	session.Closed = true

	// Compute is idempotent, so even if two closers get past the flag
	// check above only one result row ever exists.
	if _, err := s.results.Compute(ctx, session); err != nil {
		return err
	}

	log.Printf("voting session %s closed", session.ID)
	return nil
}

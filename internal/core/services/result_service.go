package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
	"github.com/google/uuid"
)

type resultService struct {
	sessionRepo ports.SessionRepository
	voteRepo    ports.VoteRepository
	resultRepo  ports.ResultRepository
}

func NewResultService(sessionRepo ports.SessionRepository, voteRepo ports.VoteRepository, resultRepo ports.ResultRepository) ports.ResultService {
	return &resultService{
		sessionRepo: sessionRepo,
		voteRepo:    voteRepo,
		resultRepo:  resultRepo,
	}
}

// Compute persists the final tally for a session at most once. If a
// result already exists it is returned unchanged, which makes double
// closes and concurrent sweeps converge on a single result.
func (s *resultService) Compute(ctx context.Context, session *domain.Session) (*domain.Result, error) {
	existing, err := s.resultRepo.GetBySessionID(ctx, session.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrResultNotFound) {
		return nil, err
	}

	result, err := s.tally(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	// Save is conflict-safe: if a concurrent compute won, the stored
	// row comes back instead of ours.
	stored, err := s.resultRepo.Save(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("failed to persist result for session %s: %w", session.ID, err)
	}

	log.Printf("result computed for session %s: total=%d yes=%d no=%d approved=%t",
		session.ID, stored.TotalVotes, stored.YesVotes, stored.NoVotes, stored.Approved())
	return stored, nil
}

// Live computes the current tally from the ledger without persisting it.
func (s *resultService) Live(ctx context.Context, session *domain.Session) (*domain.Result, error) {
	return s.tally(ctx, session.ID)
}

func (s *resultService) ResultFor(ctx context.Context, sessionID string) (*domain.Result, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Closed {
		// Lazy backfill: a session closed before its result existed
		// gets one computed and persisted on first read.
		return s.Compute(ctx, session)
	}

	return s.Live(ctx, session)
}

func (s *resultService) tally(ctx context.Context, sessionID uuid.UUID) (*domain.Result, error) {
	total, err := s.voteRepo.CountBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes for session %s: %w", sessionID, err)
	}
	yes, err := s.voteRepo.CountBySessionAndChoice(ctx, sessionID, domain.VoteYes)
	if err != nil {
		return nil, fmt.Errorf("failed to count yes votes for session %s: %w", sessionID, err)
	}
	no, err := s.voteRepo.CountBySessionAndChoice(ctx, sessionID, domain.VoteNo)
	if err != nil {
		return nil, fmt.Errorf("failed to count no votes for session %s: %w", sessionID, err)
	}

	return &domain.Result{
		ID:         uuid.New(),
		SessionID:  sessionID,
		TotalVotes: total,
		YesVotes:   yes,
		NoVotes:    no,
		ComputedAt: time.Now(),
	}, nil
}

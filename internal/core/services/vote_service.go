package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
	"github.com/google/uuid"
)

type voteService struct {
	sessionRepo ports.SessionRepository
	voteRepo    ports.VoteRepository
	eligibility ports.EligibilityValidator
}

func NewVoteService(sessionRepo ports.SessionRepository, voteRepo ports.VoteRepository, eligibility ports.EligibilityValidator) ports.VoteService {
	return &voteService{
		sessionRepo: sessionRepo,
		voteRepo:    voteRepo,
		eligibility: eligibility,
	}
}

func (s *voteService) Register(ctx context.Context, input ports.RegisterVoteInput) (*domain.Vote, error) {
	if !input.Choice.Valid() {
		return nil, errors.New("choice must be YES or NO")
	}

	session, err := s.sessionRepo.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	// A session past its window but not yet swept is closed for voting
	// purposes even though its flag is still false.
	if !session.IsOpen() {
		log.Printf("vote rejected: session %s is not open", session.ID)
		return nil, domain.ErrSessionClosed
	}

	// Fail-fast pre-check. The unique constraint on the ledger is the
	// authoritative enforcement, this only saves the eligibility call
	// for the common duplicate case.
	hasVoted, err := s.voteRepo.HasVoted(ctx, input.SessionID, input.MemberID)
	if err != nil {
		return nil, err
	}
	if hasVoted {
		return nil, domain.ErrAlreadyVoted
	}

	if err := s.eligibility.Check(ctx, input.Document); err != nil {
		return nil, err
	}

	vote := &domain.Vote{
		ID:        uuid.New(),
		SessionID: input.SessionID,
		MemberID:  input.MemberID,
		Document:  input.Document,
		Choice:    input.Choice,
		CreatedAt: time.Now(),
	}

	// The repository re-checks the session window in the same statement
	// that persists the vote and translates constraint violations, so a
	// concurrent duplicate or a racing close surfaces as the proper
	// domain error here.
	if err := s.voteRepo.Save(ctx, vote); err != nil {
		if errors.Is(err, domain.ErrAlreadyVoted) {
			log.Printf("conflict registering vote for member %s in session %s", input.MemberID, input.SessionID)
		}
		return nil, err
	}

	log.Printf("vote %s registered for session %s", vote.ID, vote.SessionID)
	return vote, nil
}

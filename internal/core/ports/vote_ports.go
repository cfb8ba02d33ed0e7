package ports

import (
	"context"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/google/uuid"
)

type VoteRepository interface {
	// Save inserts the vote. It must fail with domain.ErrAlreadyVoted
	// on a duplicate (session, member) pair and with
	// domain.ErrSessionClosed when the session is no longer inside its
	// voting window at insert time.
	Save(ctx context.Context, vote *domain.Vote) error
	HasVoted(ctx context.Context, sessionID, memberID uuid.UUID) (bool, error)
	CountBySession(ctx context.Context, sessionID uuid.UUID) (int64, error)
	CountBySessionAndChoice(ctx context.Context, sessionID uuid.UUID, choice domain.VoteChoice) (int64, error)
}

type RegisterVoteInput struct {
	SessionID uuid.UUID
	MemberID  uuid.UUID
	Document  string
	Choice    domain.VoteChoice
}

type VoteService interface {
	Register(ctx context.Context, input RegisterVoteInput) (*domain.Vote, error)
}

// EligibilityValidator is the external collaborator deciding whether the
// holder of a document may vote. A nil error means eligible;
// domain.ErrInvalidDocument and domain.ErrMemberNotEligible are the only
// expected failures, anything else is treated as an upstream outage.
type EligibilityValidator interface {
	Check(ctx context.Context, document string) error
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

type VoteChoice string

const (
	VoteYes VoteChoice = "YES"
	VoteNo  VoteChoice = "NO"
)

func (c VoteChoice) Valid() bool {
	return c == VoteYes || c == VoteNo
}

// Vote is one member's immutable choice within a session. A (session,
// member) pair holds at most one vote, enforced by a unique constraint
// at the storage layer.
type Vote struct {
	ID        uuid.UUID  `json:"id"`
	SessionID uuid.UUID  `json:"session_id"`
	MemberID  uuid.UUID  `json:"member_id"`
	Document  string     `json:"document"`
	Choice    VoteChoice `json:"choice"`
	CreatedAt time.Time  `json:"created_at"`
}

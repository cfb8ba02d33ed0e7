package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Result is the tally for a session. It is persisted at most once, when
// the session closes; while a session is open the same shape is computed
// transiently for live tallies and never stored.
type Result struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	TotalVotes int64
	YesVotes   int64
	NoVotes    int64
	ComputedAt time.Time
}

// Approved reports whether the agenda passed. Simple majority: strictly
// more YES than NO votes; a tie is not approved.
func (r *Result) Approved() bool {
	return r.YesVotes > r.NoVotes
}

func (r *Result) PercentYes() float64 {
	if r.TotalVotes == 0 {
		return 0
	}
	return float64(r.YesVotes) * 100 / float64(r.TotalVotes)
}

func (r *Result) PercentNo() float64 {
	if r.TotalVotes == 0 {
		return 0
	}
	return float64(r.NoVotes) * 100 / float64(r.TotalVotes)
}

// MarshalJSON includes the derived fields so every read of the same
// persisted counts produces an identical payload.
func (r *Result) MarshalJSON() ([]byte, error) {
	type resultJSON struct {
		ID         uuid.UUID `json:"id"`
		SessionID  uuid.UUID `json:"session_id"`
		TotalVotes int64     `json:"total_votes"`
		YesVotes   int64     `json:"yes_votes"`
		NoVotes    int64     `json:"no_votes"`
		PercentYes float64   `json:"percent_yes"`
		PercentNo  float64   `json:"percent_no"`
		Approved   bool      `json:"approved"`
		ComputedAt time.Time `json:"computed_at"`
	}
	return json.Marshal(resultJSON{
		ID:         r.ID,
		SessionID:  r.SessionID,
		TotalVotes: r.TotalVotes,
		YesVotes:   r.YesVotes,
		NoVotes:    r.NoVotes,
		PercentYes: r.PercentYes(),
		PercentNo:  r.PercentNo(),
		Approved:   r.Approved(),
		ComputedAt: r.ComputedAt,
	})
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSessionDuration is used when a session is opened without an
// explicit window.
const DefaultSessionDuration = 1 * time.Minute

// Session is a bounded voting window for a single agenda. At most one
// open session may exist per agenda at any instant.
type Session struct {
	ID       uuid.UUID `json:"id"`
	AgendaID uuid.UUID `json:"agenda_id"`
	OpenedAt time.Time `json:"opened_at"`
	ClosesAt time.Time `json:"closes_at"`
	Closed   bool      `json:"closed"`
}

// IsOpen reports whether the session currently accepts votes: not
// explicitly closed and inside its [OpenedAt, ClosesAt) window.
func (s *Session) IsOpen() bool {
	now := time.Now()
	return !s.Closed && !now.Before(s.OpenedAt) && now.Before(s.ClosesAt)
}

// IsExpiredButOpen reports whether the window has elapsed without the
// closed flag being set yet. Such sessions are picked up by the sweeper.
func (s *Session) IsExpiredButOpen() bool {
	return !s.Closed && !time.Now().Before(s.ClosesAt)
}

package services

import (
	"context"
	"log"
	"time"

	"github.com/coopvote/api/internal/core/ports"
)

// DefaultSweepInterval is how often the sweeper looks for expired
// sessions that still need closing.
const DefaultSweepInterval = 10 * time.Second

// Sweeper drives automatic closing of sessions whose window has elapsed.
// It reuses the lifecycle manager's close path, so explicit closes and
// swept closes are indistinguishable and safely race each other.
type Sweeper struct {
	sessionRepo ports.SessionRepository
	sessions    ports.SessionService
	interval    time.Duration
}

func NewSweeper(sessionRepo ports.SessionRepository, sessions ports.SessionService, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{
		sessionRepo: sessionRepo,
		sessions:    sessions,
		interval:    interval,
	}
}

// Run sweeps on a fixed period until ctx is canceled. An in-flight sweep
// finishes its current batch before Run returns.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Printf("expiry sweeper started, interval %s", s.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("expiry sweeper stopped")
			return
		case <-ticker.C:
			s.sweepOnce(context.Background())
		}
	}
}

// sweepOnce closes every expired open session it can find. One session
// failing to close does not stop the rest of the batch; the next pass
// retries whatever is left.
func (s *Sweeper) sweepOnce(ctx context.Context) {
	expired, err := s.sessionRepo.ListExpiredOpen(ctx, time.Now())
	if err != nil {
		log.Printf("failed to list expired sessions: %v", err)
		return
	}

	if len(expired) == 0 {
		return
	}

	log.Printf("found %d expired sessions to close", len(expired))
	for _, session := range expired {
		if err := s.sessions.Close(ctx, session.ID.String()); err != nil {
			log.Printf("failed to close expired session %s: %v", session.ID, err)
		}
	}
}

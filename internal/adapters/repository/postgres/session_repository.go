package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
	"github.com/google/uuid"
)

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) ports.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Save inserts the session only if the agenda has no other session that
// is unclosed and still inside its window. The conditional insert makes
// the single-open-session check and the insert a single atomic
// statement, so concurrent opens cannot both succeed.
func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (id, agenda_id, opened_at, closes_at, closed)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM sessions
			WHERE agenda_id = $2 AND closed = FALSE AND closes_at > NOW()
		)
	`
	res, err := r.db.ExecContext(ctx, query,
		session.ID, session.AgendaID, session.OpenedAt, session.ClosesAt, session.Closed)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read insert result: %w", err)
	}
	if affected == 0 {
		return domain.ErrSessionAlreadyOpen
	}
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	query := `
		SELECT id, agenda_id, opened_at, closes_at, closed
		FROM sessions
		WHERE id = $1
	`

	var session domain.Session
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID, &session.AgendaID, &session.OpenedAt, &session.ClosesAt, &session.Closed,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

func (r *sessionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Session, error) {
	query := `
		SELECT id, agenda_id, opened_at, closes_at, closed
		FROM sessions
		ORDER BY opened_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *sessionRepository) SetClosed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE sessions SET closed = TRUE WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}

func (r *sessionRepository) ListExpiredOpen(ctx context.Context, now time.Time) ([]*domain.Session, error) {
	query := `
		SELECT id, agenda_id, opened_at, closes_at, closed
		FROM sessions
		WHERE closed = FALSE AND closes_at <= $1
	`
	rows, err := r.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var session domain.Session
		if err := rows.Scan(&session.ID, &session.AgendaID, &session.OpenedAt, &session.ClosesAt, &session.Closed); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, &session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}
	return sessions, nil
}

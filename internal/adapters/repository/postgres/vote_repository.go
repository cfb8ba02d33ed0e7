package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Save inserts the vote only while the session is unclosed and inside
// its window, re-checking that condition in the same statement that
// persists the row. A unique-constraint violation on (session, member)
// means a concurrent duplicate won the race and is reported as
// ErrAlreadyVoted; zero affected rows means the window closed first.
func (r *voteRepository) Save(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (id, session_id, member_id, document, choice, created_at)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE EXISTS (
			SELECT 1 FROM sessions
			WHERE id = $2 AND closed = FALSE AND closes_at > NOW()
		)
	`
	res, err := r.db.ExecContext(ctx, query,
		vote.ID, vote.SessionID, vote.MemberID, vote.Document, vote.Choice, vote.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read insert result: %w", err)
	}
	if affected == 0 {
		return domain.ErrSessionClosed
	}
	return nil
}

func (r *voteRepository) HasVoted(ctx context.Context, sessionID, memberID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM votes WHERE session_id = $1 AND member_id = $2 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, sessionID, memberID).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}

func (r *voteRepository) CountBySession(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM votes WHERE session_id = $1`
	var count int64
	if err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

func (r *voteRepository) CountBySessionAndChoice(ctx context.Context, sessionID uuid.UUID, choice domain.VoteChoice) (int64, error) {
	query := `SELECT COUNT(*) FROM votes WHERE session_id = $1 AND choice = $2`
	var count int64
	if err := r.db.QueryRowContext(ctx, query, sessionID, choice).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count votes by choice: %w", err)
	}
	return count, nil
}

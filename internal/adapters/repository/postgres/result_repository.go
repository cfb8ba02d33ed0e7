package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
	"github.com/google/uuid"
)

type resultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) ports.ResultRepository {
	return &resultRepository{
		db: db,
	}
}

// Save persists the result unless one already exists for the session.
// The unique constraint on session_id plus DO NOTHING makes concurrent
// computes converge: the loser reads back the winner's row.
func (r *resultRepository) Save(ctx context.Context, result *domain.Result) (*domain.Result, error) {
	query := `
		INSERT INTO results (id, session_id, total_votes, yes_votes, no_votes, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query,
		result.ID, result.SessionID, result.TotalVotes, result.YesVotes, result.NoVotes, result.ComputedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert result: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read insert result: %w", err)
	}
	if affected == 0 {
		return r.GetBySessionID(ctx, result.SessionID)
	}
	return result, nil
}

func (r *resultRepository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.Result, error) {
	query := `
		SELECT id, session_id, total_votes, yes_votes, no_votes, computed_at
		FROM results
		WHERE session_id = $1
	`

	var result domain.Result
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(
		&result.ID, &result.SessionID, &result.TotalVotes, &result.YesVotes, &result.NoVotes, &result.ComputedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	return &result, nil
}

func (r *resultRepository) ExistsBySessionID(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM results WHERE session_id = $1 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing result: %w", err)
	}
	return true, nil
}

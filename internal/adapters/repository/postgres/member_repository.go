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

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) ports.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

func (r *memberRepository) Save(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (id, name, document, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		member.ID, member.Name, member.Document, member.Active, member.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDocumentTaken
		}
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	query := `
		SELECT id, name, document, active, created_at
		FROM members
		WHERE id = $1
	`

	var member domain.Member
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID, &member.Name, &member.Document, &member.Active, &member.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &member, nil
}

func (r *memberRepository) GetByDocument(ctx context.Context, document string) (*domain.Member, error) {
	query := `
		SELECT id, name, document, active, created_at
		FROM members
		WHERE document = $1
	`

	var member domain.Member
	err := r.db.QueryRowContext(ctx, query, document).Scan(
		&member.ID, &member.Name, &member.Document, &member.Active, &member.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member by document: %w", err)
	}

	return &member, nil
}

func (r *memberRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	query := `SELECT 1 FROM members WHERE document = $1 LIMIT 1`
	var exists int
	err := r.db.QueryRowContext(ctx, query, document).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing member: %w", err)
	}
	return true, nil
}

func (r *memberRepository) List(ctx context.Context, limit, offset int) ([]*domain.Member, error) {
	query := `
		SELECT id, name, document, active, created_at
		FROM members
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		var member domain.Member
		if err := rows.Scan(&member.ID, &member.Name, &member.Document, &member.Active, &member.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}
	return members, nil
}

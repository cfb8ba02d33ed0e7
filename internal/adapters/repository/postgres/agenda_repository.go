package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
	"github.com/google/uuid"
)

type agendaRepository struct {
	db *sql.DB
}

func NewAgendaRepository(db *sql.DB) ports.AgendaRepository {
	return &agendaRepository{
		db: db,
	}
}

func (r *agendaRepository) Save(ctx context.Context, agenda *domain.Agenda) error {
	query := `
		INSERT INTO agendas (id, title, description, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, agenda.ID, agenda.Title, agenda.Description, agenda.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert agenda: %w", err)
	}
	return nil
}

func (r *agendaRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agenda, error) {
	query := `
		SELECT id, title, description, created_at
		FROM agendas
		WHERE id = $1
	`

	var agenda domain.Agenda
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&agenda.ID, &agenda.Title, &agenda.Description, &agenda.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAgendaNotFound
		}
		return nil, fmt.Errorf("failed to get agenda: %w", err)
	}

	return &agenda, nil
}

func (r *agendaRepository) List(ctx context.Context, limit, offset int) ([]*domain.Agenda, error) {
	query := `
		SELECT id, title, description, created_at
		FROM agendas
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list agendas: %w", err)
	}
	defer rows.Close()

	var agendas []*domain.Agenda
	for rows.Next() {
		var agenda domain.Agenda
		if err := rows.Scan(&agenda.ID, &agenda.Title, &agenda.Description, &agenda.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan agenda: %w", err)
		}
		agendas = append(agendas, &agenda)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating agendas: %w", err)
	}
	return agendas, nil
}

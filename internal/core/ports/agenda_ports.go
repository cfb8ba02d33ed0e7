package ports

import (
	"context"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/google/uuid"
)

type AgendaRepository interface {
	Save(ctx context.Context, agenda *domain.Agenda) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Agenda, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Agenda, error)
}

type CreateAgendaInput struct {
	Title       string
	Description string
}

type AgendaService interface {
	Create(ctx context.Context, input CreateAgendaInput) (*domain.Agenda, error)
	Get(ctx context.Context, id string) (*domain.Agenda, error)
	List(ctx context.Context, page int) ([]*domain.Agenda, error)
}

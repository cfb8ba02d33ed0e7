package services

import (
	"context"
	"errors"
	"time"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
	"github.com/google/uuid"
)

const pageSize = 20

type agendaService struct {
	repo ports.AgendaRepository
}

func NewAgendaService(repo ports.AgendaRepository) ports.AgendaService {
	return &agendaService{
		repo: repo,
	}
}

func (s *agendaService) Create(ctx context.Context, input ports.CreateAgendaInput) (*domain.Agenda, error) {
	if input.Title == "" {
		return nil, errors.New("title is required")
	}

	agenda := &domain.Agenda{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Save(ctx, agenda); err != nil {
		return nil, err
	}

	return agenda, nil
}

func (s *agendaService) Get(ctx context.Context, id string) (*domain.Agenda, error) {
	agendaID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrAgendaNotFound
	}

	return s.repo.GetByID(ctx, agendaID)
}

func (s *agendaService) List(ctx context.Context, page int) ([]*domain.Agenda, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.List(ctx, pageSize, (page-1)*pageSize)
}

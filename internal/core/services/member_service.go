package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
	"github.com/google/uuid"
)

type memberService struct {
	repo ports.MemberRepository
}

func NewMemberService(repo ports.MemberRepository) ports.MemberService {
	return &memberService{
		repo: repo,
	}
}

func (s *memberService) Register(ctx context.Context, input ports.RegisterMemberInput) (*domain.Member, error) {
	if input.Name == "" {
		return nil, errors.New("name is required")
	}
	if input.Document == "" {
		return nil, errors.New("document is required")
	}

	taken, err := s.repo.ExistsByDocument(ctx, input.Document)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDocumentTaken
	}

	member := &domain.Member{
		ID:        uuid.New(),
		Name:      input.Name,
		Document:  input.Document,
		Active:    true,
		CreatedAt: time.Now(),
	}

	// The repository translates a concurrent duplicate that slipped
	// past the pre-check into ErrDocumentTaken.
	if err := s.repo.Save(ctx, member); err != nil {
		if errors.Is(err, domain.ErrDocumentTaken) {
			log.Printf("conflict registering member document %s: %v", input.Document, err)
		}
		return nil, err
	}

	return member, nil
}

func (s *memberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	memberID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrMemberNotFound
	}

	return s.repo.GetByID(ctx, memberID)
}

func (s *memberService) GetByDocument(ctx context.Context, document string) (*domain.Member, error) {
	if document == "" {
		return nil, errors.New("document is required")
	}

	return s.repo.GetByDocument(ctx, document)
}

func (s *memberService) List(ctx context.Context, page int) ([]*domain.Member, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.List(ctx, pageSize, (page-1)*pageSize)
}

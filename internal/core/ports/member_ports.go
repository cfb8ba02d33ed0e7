package ports

import (
	"context"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/google/uuid"
)

type MemberRepository interface {
	// Save inserts the member, failing with domain.ErrDocumentTaken on
	// a duplicate document.
	Save(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	GetByDocument(ctx context.Context, document string) (*domain.Member, error)
	ExistsByDocument(ctx context.Context, document string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Member, error)
}

type RegisterMemberInput struct {
	Name     string
	Document string
}

type MemberService interface {
	Register(ctx context.Context, input RegisterMemberInput) (*domain.Member, error)
	Get(ctx context.Context, id string) (*domain.Member, error)
	GetByDocument(ctx context.Context, document string) (*domain.Member, error)
	List(ctx context.Context, page int) ([]*domain.Member, error)
}

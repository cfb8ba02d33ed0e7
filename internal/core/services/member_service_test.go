package services

import (
	"context"
	"testing"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMember(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := NewMemberService(repo)

	member, err := svc.Register(context.Background(), ports.RegisterMemberInput{
		Name:     "Alice",
		Document: "12345678901",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice", member.Name)
	assert.True(t, member.Active)

	found, err := svc.GetByDocument(context.Background(), "12345678901")
	require.NoError(t, err)
	assert.Equal(t, member.ID, found.ID)
}

func TestRegisterMemberDuplicateDocument(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := NewMemberService(repo)

	_, err := svc.Register(context.Background(), ports.RegisterMemberInput{Name: "Alice", Document: "12345678901"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), ports.RegisterMemberInput{Name: "Bob", Document: "12345678901"})
	assert.ErrorIs(t, err, domain.ErrDocumentTaken)
}

func TestRegisterMemberValidation(t *testing.T) {
	svc := NewMemberService(newFakeMemberRepo())

	_, err := svc.Register(context.Background(), ports.RegisterMemberInput{Document: "12345678901"})
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), ports.RegisterMemberInput{Name: "Alice"})
	assert.Error(t, err)
}

func TestGetMemberInvalidID(t *testing.T) {
	svc := NewMemberService(newFakeMemberRepo())

	_, err := svc.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

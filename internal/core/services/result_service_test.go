package services

import (
	"context"
	"testing"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/coopvote/api/internal/core/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) castVote(t *testing.T, sessionID uuid.UUID, choice domain.VoteChoice) {
	t.Helper()
	_, err := env.votes.Register(context.Background(), ports.RegisterVoteInput{
		SessionID: sessionID,
		MemberID:  uuid.New(),
		Document:  "12345678901",
		Choice:    choice,
	})
	require.NoError(t, err)
}

func TestResultForClosedSession(t *testing.T) {
	env := newTestEnv()
	session := env.openSession(t)

	env.castVote(t, session.ID, domain.VoteYes)
	env.castVote(t, session.ID, domain.VoteNo)

	require.NoError(t, env.sessions.Close(context.Background(), session.ID.String()))

	result, err := env.results.ResultFor(context.Background(), session.ID.String())
	require.NoError(t, err)

	assert.EqualValues(t, 2, result.TotalVotes)
	assert.EqualValues(t, 1, result.YesVotes)
	assert.EqualValues(t, 1, result.NoVotes)
	assert.EqualValues(t, result.YesVotes+result.NoVotes, result.TotalVotes)
	assert.False(t, result.Approved(), "a tie is not approved")
}

func TestResultForIsStableAcrossReads(t *testing.T) {
	env := newTestEnv()
	session := env.openSession(t)
	env.castVote(t, session.ID, domain.VoteYes)

	require.NoError(t, env.sessions.Close(context.Background(), session.ID.String()))

	first, err := env.results.ResultFor(context.Background(), session.ID.String())
	require.NoError(t, err)
	second, err := env.results.ResultFor(context.Background(), session.ID.String())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, env.resultRepo.saves)
}

func TestComputeIsIdempotent(t *testing.T) {
	env := newTestEnv()
	session := env.openSession(t)
	env.castVote(t, session.ID, domain.VoteYes)

	first, err := env.results.Compute(context.Background(), session)
	require.NoError(t, err)
	second, err := env.results.Compute(context.Background(), session)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ComputedAt, second.ComputedAt)
	assert.Equal(t, 1, env.resultRepo.saves)
}

func TestLiveResultIsNotPersisted(t *testing.T) {
	env := newTestEnv()
	session := env.openSession(t)
	env.castVote(t, session.ID, domain.VoteYes)

	result, err := env.results.Live(context.Background(), session)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.TotalVotes)

	exists, err := env.resultRepo.ExistsBySessionID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestResultForOpenSessionReflectsLatestVotes(t *testing.T) {
	env := newTestEnv()
	session := env.openSession(t)

	env.castVote(t, session.ID, domain.VoteYes)
	partial, err := env.results.ResultFor(context.Background(), session.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 1, partial.TotalVotes)

	env.castVote(t, session.ID, domain.VoteYes)
	updated, err := env.results.ResultFor(context.Background(), session.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated.TotalVotes)
	assert.True(t, updated.Approved())
}

func TestResultForLazyBackfill(t *testing.T) {
	env := newTestEnv()
	session := env.openSession(t)
	env.castVote(t, session.ID, domain.VoteYes)

	// Session closed without a result having been computed.
	require.NoError(t, env.sessionRepo.SetClosed(context.Background(), session.ID))

	result, err := env.results.ResultFor(context.Background(), session.ID.String())
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.YesVotes)

	exists, err := env.resultRepo.ExistsBySessionID(context.Background(), session.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestResultForUnknownSession(t *testing.T) {
	env := newTestEnv()

	_, err := env.results.ResultFor(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

package services

import (
	"context"
	"sync"
	"time"

	"github.com/coopvote/api/internal/core/domain"
	"github.com/google/uuid"
)

// In-memory repositories mirroring the guarantees the postgres adapters
// provide: atomic single-open-session insert, unique (session, member)
// votes re-checked against the window at insert time, and
// at-most-once result persistence.

type fakeAgendaRepo struct {
	mu      sync.Mutex
	agendas map[uuid.UUID]*domain.Agenda
}

func newFakeAgendaRepo() *fakeAgendaRepo {
	return &fakeAgendaRepo{agendas: make(map[uuid.UUID]*domain.Agenda)}
}

func (r *fakeAgendaRepo) Save(ctx context.Context, agenda *domain.Agenda) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agendas[agenda.ID] = agenda
	return nil
}

func (r *fakeAgendaRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agenda, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	agenda, ok := r.agendas[id]
	if !ok {
		return nil, domain.ErrAgendaNotFound
	}
	return agenda, nil
}

func (r *fakeAgendaRepo) List(ctx context.Context, limit, offset int) ([]*domain.Agenda, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var agendas []*domain.Agenda
	for _, agenda := range r.agendas {
		agendas = append(agendas, agenda)
	}
	return agendas, nil
}

type fakeSessionRepo struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*domain.Session
	failClose map[uuid.UUID]error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions:  make(map[uuid.UUID]*domain.Session),
		failClose: make(map[uuid.UUID]error),
	}
}

func (r *fakeSessionRepo) Save(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, existing := range r.sessions {
		if existing.AgendaID == session.AgendaID && !existing.Closed && existing.ClosesAt.After(now) {
			return domain.ErrSessionAlreadyOpen
		}
	}
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (r *fakeSessionRepo) List(ctx context.Context, limit, offset int) ([]*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sessions []*domain.Session
	for _, session := range r.sessions {
		copied := *session
		sessions = append(sessions, &copied)
	}
	return sessions, nil
}

func (r *fakeSessionRepo) SetClosed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err, ok := r.failClose[id]; ok {
		return err
	}
	if session, ok := r.sessions[id]; ok {
		session.Closed = true
	}
	return nil
}

func (r *fakeSessionRepo) ListExpiredOpen(ctx context.Context, now time.Time) ([]*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var expired []*domain.Session
	for _, session := range r.sessions {
		if !session.Closed && !session.ClosesAt.After(now) {
			copied := *session
			expired = append(expired, &copied)
		}
	}
	return expired, nil
}

type voteKey struct {
	sessionID uuid.UUID
	memberID  uuid.UUID
}

type fakeVoteRepo struct {
	mu       sync.Mutex
	sessions *fakeSessionRepo
	votes    map[voteKey]*domain.Vote
}

func newFakeVoteRepo(sessions *fakeSessionRepo) *fakeVoteRepo {
	return &fakeVoteRepo{
		sessions: sessions,
		votes:    make(map[voteKey]*domain.Vote),
	}
}

func (r *fakeVoteRepo) Save(ctx context.Context, vote *domain.Vote) error {
	session, err := r.sessions.GetByID(ctx, vote.SessionID)
	if err != nil {
		return err
	}
	if !session.IsOpen() {
		return domain.ErrSessionClosed
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	key := voteKey{vote.SessionID, vote.MemberID}
	if _, ok := r.votes[key]; ok {
		return domain.ErrAlreadyVoted
	}
	r.votes[key] = vote
	return nil
}

func (r *fakeVoteRepo) HasVoted(ctx context.Context, sessionID, memberID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.votes[voteKey{sessionID, memberID}]
	return ok, nil
}

func (r *fakeVoteRepo) CountBySession(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for key := range r.votes {
		if key.sessionID == sessionID {
			count++
		}
	}
	return count, nil
}

func (r *fakeVoteRepo) CountBySessionAndChoice(ctx context.Context, sessionID uuid.UUID, choice domain.VoteChoice) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for key, vote := range r.votes {
		if key.sessionID == sessionID && vote.Choice == choice {
			count++
		}
	}
	return count, nil
}

type fakeResultRepo struct {
	mu      sync.Mutex
	results map[uuid.UUID]*domain.Result
	saves   int
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: make(map[uuid.UUID]*domain.Result)}
}

func (r *fakeResultRepo) Save(ctx context.Context, result *domain.Result) (*domain.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.results[result.SessionID]; ok {
		return existing, nil
	}
	r.results[result.SessionID] = result
	r.saves++
	return result, nil
}

func (r *fakeResultRepo) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result, ok := r.results[sessionID]
	if !ok {
		return nil, domain.ErrResultNotFound
	}
	return result, nil
}

func (r *fakeResultRepo) ExistsBySessionID(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.results[sessionID]
	return ok, nil
}

type fakeMemberRepo struct {
	mu      sync.Mutex
	members map[uuid.UUID]*domain.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[uuid.UUID]*domain.Member)}
}

func (r *fakeMemberRepo) Save(ctx context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.members {
		if existing.Document == member.Document {
			return domain.ErrDocumentTaken
		}
	}
	r.members[member.ID] = member
	return nil
}

func (r *fakeMemberRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	member, ok := r.members[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return member, nil
}

func (r *fakeMemberRepo) GetByDocument(ctx context.Context, document string) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, member := range r.members {
		if member.Document == document {
			return member, nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *fakeMemberRepo) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, member := range r.members {
		if member.Document == document {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMemberRepo) List(ctx context.Context, limit, offset int) ([]*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var members []*domain.Member
	for _, member := range r.members {
		members = append(members, member)
	}
	return members, nil
}

type fakeValidator struct {
	err error
}

func (v *fakeValidator) Check(ctx context.Context, document string) error {
	return v.err
}

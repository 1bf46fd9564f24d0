// Package memory keeps users, device sessions and attempts in process memory.
// Conditional updates follow the same rules as the Postgres repository, with
// the mutex standing in for row-level atomicity.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/JMURv/bloggers-auth/internal/clock"
	md "github.com/JMURv/bloggers-auth/internal/models"
	"github.com/JMURv/bloggers-auth/internal/repo"
	"github.com/google/uuid"
)

type sessionKey struct {
	deviceID string
	userID   uuid.UUID
}

type Repository struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]md.User
	sessions map[sessionKey]md.Session
	attempts []md.Attempt
	clock    clock.Clock
}

func New(clk clock.Clock) *Repository {
	return &Repository{
		clock:    clk,
		users:    make(map[uuid.UUID]md.User),
		sessions: make(map[sessionKey]md.Session),
	}
}

func (r *Repository) Close(ctx context.Context) error {
	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*md.User, error) {
	return r.findUser(func(u *md.User) bool { return u.Login == login })
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*md.User, error) {
	return r.findUser(func(u *md.User) bool { return u.Email == email })
}

func (r *Repository) GetUserByLoginOrEmail(ctx context.Context, loginOrEmail string) (*md.User, error) {
	return r.findUser(
		func(u *md.User) bool {
			return u.Login == loginOrEmail || u.Email == loginOrEmail
		},
	)
}

func (r *Repository) GetUserByCode(ctx context.Context, code string) (*md.User, error) {
	return r.findUser(
		func(u *md.User) bool {
			return u.ConfirmationCode != nil && *u.ConfirmationCode == code
		},
	)
}

func (r *Repository) CreateUser(ctx context.Context, u *md.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.ID == u.ID || existing.Login == u.Login || existing.Email == u.Email {
			return repo.ErrAlreadyExists
		}
	}

	r.users[u.ID] = *u
	return nil
}

func (r *Repository) UpdateConfirmationCode(ctx context.Context, email, code string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, u := range r.users {
		if u.Email != email {
			continue
		}

		u.ConfirmationCode = &code
		u.CodeExpiresAt = &expiresAt
		u.UpdatedAt = r.clock.Now().UTC()
		r.users[id] = u
		return nil
	}
	return repo.ErrNotFound
}

func (r *Repository) ConfirmEmail(ctx context.Context, userID uuid.UUID, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok || u.IsEmailVerified || u.ConfirmationCode == nil || *u.ConfirmationCode != code {
		return repo.ErrConflict
	}

	u.IsEmailVerified = true
	u.UpdatedAt = r.clock.Now().UTC()
	r.users[userID] = u
	return nil
}

func (r *Repository) UpdatePassword(ctx context.Context, userID uuid.UUID, code, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok || u.ConfirmationCode == nil || *u.ConfirmationCode != code {
		return repo.ErrNotFound
	}

	u.Password = password
	u.UpdatedAt = r.clock.Now().UTC()
	r.users[userID] = u
	return nil
}

func (r *Repository) CreateSession(ctx context.Context, s *md.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKey{deviceID: s.DeviceID, userID: s.UserID}
	if _, ok := r.sessions[key]; ok {
		return repo.ErrAlreadyExists
	}

	r.sessions[key] = *s
	return nil
}

func (r *Repository) GetSession(ctx context.Context, deviceID string, userID uuid.UUID) (*md.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionKey{deviceID: deviceID, userID: userID}]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &s, nil
}

func (r *Repository) GetSessionByDeviceID(ctx context.Context, deviceID string) (*md.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for key, s := range r.sessions {
		if key.deviceID == deviceID {
			return &s, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *Repository) ListSessions(ctx context.Context, userID uuid.UUID) ([]md.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]md.Session, 0)
	for key, s := range r.sessions {
		if key.userID == userID {
			res = append(res, s)
		}
	}

	sort.Slice(
		res, func(i, j int) bool {
			return res[i].IssuedAt.Before(res[j].IssuedAt)
		},
	)
	return res, nil
}

func (r *Repository) ReplaceSession(ctx context.Context, s *md.Session, prevIssuedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKey{deviceID: s.DeviceID, userID: s.UserID}
	cur, ok := r.sessions[key]
	if !ok || !cur.IssuedAt.Equal(prevIssuedAt) {
		return repo.ErrConflict
	}

	r.sessions[key] = *s
	return nil
}

func (r *Repository) DeleteSession(ctx context.Context, deviceID string, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKey{deviceID: deviceID, userID: userID}
	if _, ok := r.sessions[key]; !ok {
		return repo.ErrNotFound
	}

	delete(r.sessions, key)
	return nil
}

func (r *Repository) DeleteSessionByDeviceID(ctx context.Context, deviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.sessions {
		if key.deviceID == deviceID {
			delete(r.sessions, key)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *Repository) DeleteOtherSessions(ctx context.Context, userID uuid.UUID, keepDeviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.sessions {
		if key.userID == userID && key.deviceID != keepDeviceID {
			delete(r.sessions, key)
		}
	}
	return nil
}

func (r *Repository) CountAttempts(ctx context.Context, ip, route string, since time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, a := range r.attempts {
		if a.IP == ip && a.Route == route && !a.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *Repository) AddAttempt(ctx context.Context, attempt *md.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.attempts = append(r.attempts, *attempt)
	return nil
}

func (r *Repository) findUser(match func(u *md.User) bool) (*md.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(&u) {
			return &u, nil
		}
	}
	return nil, repo.ErrNotFound
}

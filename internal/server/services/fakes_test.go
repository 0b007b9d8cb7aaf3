package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/rainyday/internal/common"
	"github.com/dmitrijs2005/rainyday/internal/dbx"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
	"github.com/dmitrijs2005/rainyday/internal/server/models"
	"github.com/dmitrijs2005/rainyday/internal/server/repositories/rainchecks"
	"github.com/dmitrijs2005/rainyday/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/rainyday/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/rainyday/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

type fakeRepoManager struct {
	rc rainchecks.Repository
	u  users.Repository
	rt refreshtokens.Repository
}

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) RainChecks(dbx.DBTX) rainchecks.Repository       { return m.rc }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.rt }

// memRainChecks mirrors the PostgreSQL repository semantics in memory.
type memRainChecks struct {
	mu    sync.Mutex
	seq   int
	rows  []*raincheck.RainCheck
	now   func() time.Time
	calls int
	err   error
}

func newMemRainChecks(now func() time.Time) *memRainChecks {
	return &memRainChecks{now: now}
}

func (m *memRainChecks) find(ownerID, id string) (int, *raincheck.RainCheck) {
	for i, rc := range m.rows {
		if rc.ID == id && rc.OwnerID == ownerID {
			return i, rc
		}
	}
	return -1, nil
}

func clone(rc *raincheck.RainCheck) *raincheck.RainCheck {
	c := *rc
	return &c
}

func (m *memRainChecks) Create(_ context.Context, rc *raincheck.RainCheck) (*raincheck.RainCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	m.seq++
	stored := clone(rc)
	stored.ID = fmt.Sprintf("rc-%d", m.seq)
	stored.CreatedAt = m.now()
	stored.Revision = 1
	m.rows = append(m.rows, stored)
	return clone(stored), nil
}

func (m *memRainChecks) GetByID(_ context.Context, ownerID, id string) (*raincheck.RainCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if _, rc := m.find(ownerID, id); rc != nil {
		return clone(rc), nil
	}
	return nil, common.ErrorNotFound
}

func (m *memRainChecks) Update(_ context.Context, rc *raincheck.RainCheck) (*raincheck.RainCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	_, stored := m.find(rc.OwnerID, rc.ID)
	if stored == nil {
		return nil, common.ErrorNotFound
	}
	if rc.Revision > 0 && rc.Revision != stored.Revision {
		return nil, common.ErrVersionConflict
	}
	raincheck.Record{Draft: raincheck.DraftOf(*rc)}.Apply(stored)
	stored.Revision++
	return clone(stored), nil
}

func (m *memRainChecks) Delete(_ context.Context, ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	i, rc := m.find(ownerID, id)
	if rc == nil {
		return common.ErrorNotFound
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return nil
}

func (m *memRainChecks) Complete(_ context.Context, ownerID, id string, at time.Time) (*raincheck.RainCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	_, rc := m.find(ownerID, id)
	if rc == nil {
		return nil, common.ErrorNotFound
	}
	if rc.CompletedAt == nil {
		if at.Before(rc.CreatedAt) {
			at = rc.CreatedAt
		}
		rc.CompletedAt = &at
	}
	rc.Completed = true
	return clone(rc), nil
}

func (m *memRainChecks) ListByStatus(_ context.Context, ownerID string, completed bool) ([]*raincheck.RainCheck, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	var out []*raincheck.RainCheck
	for _, rc := range m.rows {
		if rc.OwnerID == ownerID && rc.Completed == completed {
			out = append(out, clone(rc))
		}
	}
	return out, nil
}

type fakeUsers struct {
	byEmail   map[string]*models.User
	createErr error
	getErr    error
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	stored := *u
	stored.ID = fmt.Sprintf("user-%d", len(f.byEmail)+1)
	f.byEmail[u.Email] = &stored
	return &stored, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

type fakeRefreshTokens struct {
	tokens    map[string]*models.RefreshToken
	createErr error
	pruned    []string
}

func (f *fakeRefreshTokens) Create(_ context.Context, userID, token string, expiresAt time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{Token: token, UserID: userID, ExpiresAt: expiresAt}
	return nil
}

func (f *fakeRefreshTokens) Consume(_ context.Context, token string) (*models.RefreshToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.tokens, token)
	return t, nil
}

func (f *fakeRefreshTokens) DeleteExpired(_ context.Context, userID string, now time.Time) (int64, error) {
	var n int64
	for k, t := range f.tokens {
		if t.UserID == userID && t.Expired(now) {
			delete(f.tokens, k)
			f.pruned = append(f.pruned, k)
			n++
		}
	}
	return n, nil
}

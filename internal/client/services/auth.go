// Package services contains the client's application services: AuthService
// keeps the signed-in session and RainCheckService manages the user's
// records through the backend.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/rainyday/internal/client/client"
	"github.com/dmitrijs2005/rainyday/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/rainyday/internal/client/session"
	"github.com/dmitrijs2005/rainyday/internal/dbx"
	"github.com/dmitrijs2005/rainyday/internal/logging"
	"github.com/dmitrijs2005/rainyday/internal/wire"
)

// AuthClient is the part of the backend client used for authentication.
type AuthClient interface {
	Register(ctx context.Context, email, password string) (wire.Session, error)
	Login(ctx context.Context, email, password string) (wire.Session, error)
	Refresh(ctx context.Context, refreshToken string) (wire.Session, error)
	Ping(ctx context.Context) error
	SetSession(s wire.Session)
	ClearSession()
	OnRefresh(fn client.RefreshFunc)
}

// AuthService is the client's session provider. The user id, email and
// refresh token are kept in the local metadata table so that a later run
// can resume with Restore.
type AuthService struct {
	client AuthClient
	db     *sql.DB
	logger logging.Logger

	mu      sync.RWMutex
	current *session.Identity
}

var _ session.Provider = (*AuthService)(nil)

func NewAuthService(c AuthClient, db *sql.DB, logger logging.Logger) *AuthService {
	a := &AuthService{client: c, db: db, logger: logger.With("module", "auth")}
	c.OnRefresh(a.saveRefreshToken)
	return a
}

func (a *AuthService) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// CurrentUser returns a copy of the signed-in identity or nil.
func (a *AuthService) CurrentUser() *session.Identity {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return nil
	}
	id := *a.current
	return &id
}

func (a *AuthService) setCurrent(id *session.Identity) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = id
}

// Register creates the account and signs it in.
func (a *AuthService) Register(ctx context.Context, email, password string) (*session.Identity, error) {
	email = normalizeEmail(email)
	s, err := a.client.Register(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return a.signIn(ctx, email, s)
}

func (a *AuthService) Login(ctx context.Context, email, password string) (*session.Identity, error) {
	email = normalizeEmail(email)
	s, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return a.signIn(ctx, email, s)
}

func (a *AuthService) signIn(ctx context.Context, email string, s wire.Session) (*session.Identity, error) {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := a.repo(tx)
		if err := r.Set(ctx, metadata.KeyUserID, s.UserID); err != nil {
			return err
		}
		if err := r.Set(ctx, metadata.KeyEmail, email); err != nil {
			return err
		}
		return r.Set(ctx, metadata.KeyRefreshToken, s.RefreshToken)
	})
	if err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	id := &session.Identity{UserID: s.UserID, Email: email}
	a.setCurrent(id)
	a.logger.Debug(ctx, "signed in", "user", s.UserID)
	return a.CurrentUser(), nil
}

// Restore resumes the session saved by an earlier run. It returns nil when
// nothing is saved or the saved session was rejected, in which case the
// local data is cleared. When the server cannot be reached the saved
// identity is still signed in and returned along with the error; the client
// exchanges the saved refresh token on its first authenticated call.
func (a *AuthService) Restore(ctx context.Context) (*session.Identity, error) {
	r := a.repo(a.db)

	userID, okUser, err := r.Get(ctx, metadata.KeyUserID)
	if err != nil {
		return nil, err
	}
	email, okEmail, err := r.Get(ctx, metadata.KeyEmail)
	if err != nil {
		return nil, err
	}
	refresh, okRefresh, err := r.Get(ctx, metadata.KeyRefreshToken)
	if err != nil {
		return nil, err
	}
	if !okUser || !okEmail || !okRefresh {
		return nil, nil
	}

	s, err := a.client.Refresh(ctx, refresh)
	if errors.Is(err, client.ErrUnauthorized) {
		a.logger.Info(ctx, "saved session rejected", "user", userID)
		return nil, a.SignOut(ctx)
	}
	if err != nil {
		a.client.SetSession(wire.Session{UserID: userID, RefreshToken: refresh})
		a.setCurrent(&session.Identity{UserID: userID, Email: email})
		a.logger.Info(ctx, "resumed saved session offline", "user", userID)
		return a.CurrentUser(), err
	}
	if s.UserID != userID {
		a.logger.Warn(ctx, "saved session belongs to another user", "saved", userID, "got", s.UserID)
	}
	return a.signIn(ctx, email, s)
}

// SignOut forgets the session locally. The refresh token simply expires on
// the server.
func (a *AuthService) SignOut(ctx context.Context) error {
	a.client.ClearSession()
	a.setCurrent(nil)
	if err := a.repo(a.db).Clear(ctx); err != nil {
		return fmt.Errorf("clear local data: %w", err)
	}
	return nil
}

func (a *AuthService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// saveRefreshToken persists a token rotated by the client interceptor.
func (a *AuthService) saveRefreshToken(ctx context.Context, s wire.Session) {
	if a.CurrentUser() == nil {
		return
	}
	if err := a.repo(a.db).Set(ctx, metadata.KeyRefreshToken, s.RefreshToken); err != nil {
		a.logger.Warn(ctx, "failed to save refresh token", "error", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/rainyday/internal/client/client"
	"github.com/dmitrijs2005/rainyday/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/rainyday/internal/client/session"
	"github.com/dmitrijs2005/rainyday/internal/logging"
	"github.com/dmitrijs2005/rainyday/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meta(t *testing.T, a *AuthService, key string) (string, bool) {
	t.Helper()
	v, ok, err := metadata.NewSQLiteRepository(a.db).Get(context.Background(), key)
	require.NoError(t, err)
	return v, ok
}

func newAuth(t *testing.T, f *fakeAuthClient) *AuthService {
	t.Helper()
	return NewAuthService(f, openDB(t), logging.Nop{})
}

func TestAuth_LoginPersistsSession(t *testing.T) {
	f := &fakeAuthClient{session: wire.Session{UserID: "u1", AccessToken: "A", RefreshToken: "R"}}
	a := newAuth(t, f)

	assert.Nil(t, a.CurrentUser())

	id, err := a.Login(context.Background(), "  Ada@Example.com ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, &session.Identity{UserID: "u1", Email: "ada@example.com"}, id)
	assert.Equal(t, "ada@example.com", f.lastEmail)
	assert.Equal(t, id, a.CurrentUser())

	v, ok := meta(t, a, metadata.KeyRefreshToken)
	assert.True(t, ok)
	assert.Equal(t, "R", v)
	v, _ = meta(t, a, metadata.KeyUserID)
	assert.Equal(t, "u1", v)
	v, _ = meta(t, a, metadata.KeyEmail)
	assert.Equal(t, "ada@example.com", v)
}

func TestAuth_CurrentUserIsACopy(t *testing.T) {
	a := newAuth(t, &fakeAuthClient{session: wire.Session{UserID: "u1", RefreshToken: "R"}})
	_, err := a.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)

	a.CurrentUser().UserID = "someone else"
	assert.Equal(t, "u1", a.CurrentUser().UserID)
}

func TestAuth_RegisterSignsIn(t *testing.T) {
	f := &fakeAuthClient{session: wire.Session{UserID: "u2", AccessToken: "A", RefreshToken: "R"}}
	a := newAuth(t, f)

	id, err := a.Register(context.Background(), "bob@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, "u2", id.UserID)
	assert.Equal(t, "password1", f.lastPassword)
	assert.NotNil(t, a.CurrentUser())
}

func TestAuth_LoginFailureKeepsSignedOut(t *testing.T) {
	a := newAuth(t, &fakeAuthClient{loginErr: client.ErrUnauthorized})

	_, err := a.Login(context.Background(), "ada@example.com", "wrong")
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Nil(t, a.CurrentUser())
	_, ok := meta(t, a, metadata.KeyRefreshToken)
	assert.False(t, ok)
}

func TestAuth_RestoreWithoutSavedSession(t *testing.T) {
	f := &fakeAuthClient{}
	a := newAuth(t, f)

	id, err := a.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, id)
	assert.Empty(t, f.lastRefresh)
}

func TestAuth_RestoreRefreshesSavedSession(t *testing.T) {
	f := &fakeAuthClient{session: wire.Session{UserID: "u1", AccessToken: "A1", RefreshToken: "R1"}}
	a := newAuth(t, f)
	_, err := a.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)

	// a new run starts with nothing in memory
	f.session = wire.Session{UserID: "u1", AccessToken: "A2", RefreshToken: "R2"}
	b := NewAuthService(f, a.db, logging.Nop{})

	id, err := b.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &session.Identity{UserID: "u1", Email: "ada@example.com"}, id)
	assert.Equal(t, "R1", f.lastRefresh)

	v, _ := meta(t, b, metadata.KeyRefreshToken)
	assert.Equal(t, "R2", v)
}

func TestAuth_RestoreRejectedClearsLocalData(t *testing.T) {
	f := &fakeAuthClient{session: wire.Session{UserID: "u1", RefreshToken: "R1"}}
	a := newAuth(t, f)
	_, err := a.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)

	f.refreshErr = client.ErrUnauthorized
	id, err := a.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, id)
	assert.Nil(t, a.CurrentUser())
	assert.Equal(t, 1, f.cleared)

	_, ok := meta(t, a, metadata.KeyUserID)
	assert.False(t, ok)
}

func TestAuth_RestoreOfflineKeepsLocalData(t *testing.T) {
	f := &fakeAuthClient{session: wire.Session{UserID: "u1", RefreshToken: "R1"}}
	a := newAuth(t, f)
	_, err := a.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)

	f.refreshErr = client.ErrUnavailable
	b := NewAuthService(f, a.db, logging.Nop{})
	id, err := b.Restore(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)

	v, ok := meta(t, b, metadata.KeyRefreshToken)
	assert.True(t, ok)
	assert.Equal(t, "R1", v)

	want := &session.Identity{UserID: "u1", Email: "ada@example.com"}
	assert.Equal(t, want, id)
	assert.Equal(t, want, b.CurrentUser())
	assert.Equal(t, wire.Session{UserID: "u1", RefreshToken: "R1"}, f.seeded)
	assert.Zero(t, f.cleared)
}

func TestAuth_RestoredOfflineSessionSavesLaterRotation(t *testing.T) {
	f := &fakeAuthClient{session: wire.Session{UserID: "u1", RefreshToken: "R1"}}
	a := newAuth(t, f)
	_, err := a.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)

	f.refreshErr = client.ErrUnavailable
	b := NewAuthService(f, a.db, logging.Nop{})
	_, err = b.Restore(context.Background())
	require.Error(t, err)

	// the server is back and the client exchanged the saved token
	f.onRefresh(context.Background(), wire.Session{UserID: "u1", AccessToken: "A2", RefreshToken: "R2"})
	v, _ := meta(t, b, metadata.KeyRefreshToken)
	assert.Equal(t, "R2", v)
}

func TestAuth_SignOut(t *testing.T) {
	f := &fakeAuthClient{session: wire.Session{UserID: "u1", RefreshToken: "R1"}}
	a := newAuth(t, f)
	_, err := a.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)

	require.NoError(t, a.SignOut(context.Background()))
	assert.Nil(t, a.CurrentUser())
	assert.Equal(t, 1, f.cleared)
	_, ok := meta(t, a, metadata.KeyEmail)
	assert.False(t, ok)
}

func TestAuth_RotatedTokenIsSaved(t *testing.T) {
	f := &fakeAuthClient{session: wire.Session{UserID: "u1", RefreshToken: "R1"}}
	a := newAuth(t, f)
	require.NotNil(t, f.onRefresh)

	// ignored while signed out
	f.onRefresh(context.Background(), wire.Session{RefreshToken: "early"})
	_, ok := meta(t, a, metadata.KeyRefreshToken)
	assert.False(t, ok)

	_, err := a.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)

	f.onRefresh(context.Background(), wire.Session{UserID: "u1", AccessToken: "A9", RefreshToken: "R9"})
	v, _ := meta(t, a, metadata.KeyRefreshToken)
	assert.Equal(t, "R9", v)
}

func TestAuth_Ping(t *testing.T) {
	a := newAuth(t, &fakeAuthClient{pingErr: client.ErrUnavailable})
	assert.ErrorIs(t, a.Ping(context.Background()), client.ErrUnavailable)
}

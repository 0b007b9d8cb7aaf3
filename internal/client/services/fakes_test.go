package services

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/rainyday/internal/client/client"
	"github.com/dmitrijs2005/rainyday/internal/common"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
	"github.com/dmitrijs2005/rainyday/internal/wire"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type fakeAuthClient struct {
	session    wire.Session
	loginErr   error
	refreshErr error
	pingErr    error

	lastEmail    string
	lastPassword string
	lastRefresh  string
	cleared      int
	seeded       wire.Session
	onRefresh    client.RefreshFunc
}

var _ AuthClient = (*fakeAuthClient)(nil)

func (f *fakeAuthClient) Register(_ context.Context, email, password string) (wire.Session, error) {
	f.lastEmail, f.lastPassword = email, password
	return f.session, f.loginErr
}

func (f *fakeAuthClient) Login(_ context.Context, email, password string) (wire.Session, error) {
	f.lastEmail, f.lastPassword = email, password
	if f.loginErr != nil {
		return wire.Session{}, f.loginErr
	}
	return f.session, nil
}

func (f *fakeAuthClient) Refresh(_ context.Context, token string) (wire.Session, error) {
	f.lastRefresh = token
	if f.refreshErr != nil {
		return wire.Session{}, f.refreshErr
	}
	return f.session, nil
}

func (f *fakeAuthClient) Ping(context.Context) error { return f.pingErr }
func (f *fakeAuthClient) ClearSession()              { f.cleared++ }
func (f *fakeAuthClient) SetSession(s wire.Session)  { f.seeded = s }

func (f *fakeAuthClient) OnRefresh(fn client.RefreshFunc) { f.onRefresh = fn }

// fakeRainCheckClient records what reached the network.
type fakeRainCheckClient struct {
	calls    []string
	drafts   []raincheck.Draft
	items    []*raincheck.RainCheck
	err      error
	upload   wire.ImageUpload
	imageURL string
}

var _ RainCheckClient = (*fakeRainCheckClient)(nil)

func (f *fakeRainCheckClient) CreateRainCheck(_ context.Context, d raincheck.Draft) (*raincheck.RainCheck, error) {
	f.calls = append(f.calls, "create")
	f.drafts = append(f.drafts, d)
	if f.err != nil {
		return nil, f.err
	}
	rc := &raincheck.RainCheck{ID: "rc-1", OwnerID: "u1", Revision: 1}
	raincheck.Record{Draft: d}.Apply(rc)
	return rc, nil
}

func (f *fakeRainCheckClient) UpdateRainCheck(_ context.Context, id string, revision int64, d raincheck.Draft) (*raincheck.RainCheck, error) {
	f.calls = append(f.calls, "update")
	f.drafts = append(f.drafts, d)
	if f.err != nil {
		return nil, f.err
	}
	rc := &raincheck.RainCheck{ID: id, OwnerID: "u1", Revision: revision + 1}
	raincheck.Record{Draft: d}.Apply(rc)
	return rc, nil
}

func (f *fakeRainCheckClient) DeleteRainCheck(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete "+id)
	return f.err
}

func (f *fakeRainCheckClient) CompleteRainCheck(_ context.Context, id string) (*raincheck.RainCheck, error) {
	f.calls = append(f.calls, "complete "+id)
	if f.err != nil {
		return nil, f.err
	}
	return &raincheck.RainCheck{ID: id, Completed: true}, nil
}

func (f *fakeRainCheckClient) GetRainCheck(_ context.Context, id string) (*raincheck.RainCheck, error) {
	f.calls = append(f.calls, "get "+id)
	for _, rc := range f.items {
		if rc.ID == id {
			return rc, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeRainCheckClient) ListRainChecks(_ context.Context, completed bool) ([]*raincheck.RainCheck, error) {
	if completed {
		f.calls = append(f.calls, "list completed")
	} else {
		f.calls = append(f.calls, "list pending")
	}
	if f.err != nil {
		return nil, f.err
	}
	var out []*raincheck.RainCheck
	for _, rc := range f.items {
		if rc.Completed == completed {
			out = append(out, rc)
		}
	}
	return out, nil
}

func (f *fakeRainCheckClient) ImageUploadURL(_ context.Context, contentType string) (wire.ImageUpload, error) {
	f.calls = append(f.calls, "upload "+contentType)
	return f.upload, f.err
}

func (f *fakeRainCheckClient) ImageURL(_ context.Context, key string) (string, error) {
	f.calls = append(f.calls, "image "+key)
	return f.imageURL, f.err
}

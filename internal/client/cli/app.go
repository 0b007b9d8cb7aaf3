package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/rainyday/internal/client/client"
	"github.com/dmitrijs2005/rainyday/internal/client/config"
	"github.com/dmitrijs2005/rainyday/internal/client/services"
	"github.com/dmitrijs2005/rainyday/internal/client/session"
	"github.com/dmitrijs2005/rainyday/internal/logging"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type authService interface {
	Register(ctx context.Context, email, password string) (*session.Identity, error)
	Login(ctx context.Context, email, password string) (*session.Identity, error)
	Restore(ctx context.Context) (*session.Identity, error)
	CurrentUser() *session.Identity
	SignOut(ctx context.Context) error
	Ping(ctx context.Context) error
}

type rainCheckService interface {
	Create(ctx context.Context, d raincheck.Draft) (*raincheck.RainCheck, error)
	Update(ctx context.Context, id string, revision int64, d raincheck.Draft) (*raincheck.RainCheck, error)
	Delete(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) (*raincheck.RainCheck, error)
	Get(ctx context.Context, id string) (*raincheck.RainCheck, error)
	ListPending(ctx context.Context) ([]*raincheck.RainCheck, error)
	ListCompleted(ctx context.Context) ([]*raincheck.RainCheck, error)
	UploadImage(ctx context.Context, body io.Reader, size int64, contentType string) (string, error)
	ImageURL(ctx context.Context, key string) (string, error)
}

type App struct {
	config     *config.Config
	auth       authService
	rainchecks rainCheckService
	logger     logging.Logger
	closers    []io.Closer
	reader     *bufio.Reader
	out        io.Writer
	now        func() time.Time
	pick       func(n int) int

	mu   sync.RWMutex
	mode Mode
}

// NewApp opens the local database, connects to the server and wires the
// services. Nothing is sent over the network yet.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stderr, c.LogLevel)

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("local database: %w", err)
	}

	gc, err := client.NewGRPCClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("grpc client: %w", err)
	}

	as := services.NewAuthService(gc, db, logger)
	rs := services.NewRainCheckService(gc, as)

	return &App{
		config:     c,
		auth:       as,
		rainchecks: rs,
		logger:     logger.With("module", "cli"),
		closers:    []io.Closer{gc, db},
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		now:        time.Now,
		pick:       rand.IntN,
	}, nil
}

// Run resumes a saved session, starts the connectivity watcher and blocks
// in the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to RainyDay (type 'help' for commands)")

	id, err := a.auth.Restore(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not resume session", "error", err)
		a.setMode(ModeOffline)
	} else if id != nil {
		a.setMode(ModeOnline)
	}
	if id != nil {
		fmt.Fprintf(a.out, "Signed in as %s\n", id.Email)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the connection and the local database.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func (a *App) isLoggedIn() bool {
	return a.auth.CurrentUser() != nil
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// getStatus renders the prompt prefix, e.g. "(ada@example.com online)".
func (a *App) getStatus() string {
	s := ""
	if id := a.auth.CurrentUser(); id != nil {
		s = id.Email + " "
	}
	s += string(a.Mode())
	if s == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", s)
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	if err := a.auth.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

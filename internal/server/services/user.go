package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/rainyday/internal/common"
	"github.com/dmitrijs2005/rainyday/internal/dbx"
	"github.com/dmitrijs2005/rainyday/internal/logging"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
	"github.com/dmitrijs2005/rainyday/internal/server/auth"
	"github.com/dmitrijs2005/rainyday/internal/server/config"
	"github.com/dmitrijs2005/rainyday/internal/server/models"
	"github.com/dmitrijs2005/rainyday/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 8

const refreshTokenBytes = 32

// TokenPair bundles a short-lived access token and a single-use refresh token.
type TokenPair struct {
	UserID       string
	AccessToken  string
	RefreshToken string
}

// UserService registers accounts and issues session tokens.
type UserService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	signer          *auth.Signer
	refreshTokenTTL time.Duration
	hashCost        int
	logger          logging.Logger
	now             func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:              db,
		repomanager:     m,
		signer:          auth.NewSigner([]byte(cfg.SecretKey), cfg.AccessTokenTTL),
		refreshTokenTTL: cfg.RefreshTokenTTL,
		hashCost:        bcrypt.DefaultCost,
		logger:          logger.With("module", "users"),
		now:             time.Now,
	}
}

// Signer exposes the token verifier used by the transport layer.
func (s *UserService) Signer() *auth.Signer { return s.signer }

// Register creates an account. A taken email yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLength {
		return nil, &raincheck.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("Password must be at least %d characters.", MinPasswordLength),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: create user: %w", common.ErrPersistence, err)
	}

	s.logger.Info(ctx, "user registered", "user", u.ID)
	return u, nil
}

// Login checks the credentials and starts a session. Unknown emails and
// wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: find user: %w", common.ErrPersistence, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		n, err := s.repomanager.RefreshTokens(tx).DeleteExpired(ctx, user.ID, s.now())
		if err != nil {
			return err
		}
		if n > 0 {
			s.logger.Debug(ctx, "pruned refresh tokens", "user", user.ID, "count", n)
		}
		pair, err = s.generateTokenPair(ctx, user.ID, tx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: login: %w", common.ErrPersistence, err)
	}
	return pair, nil
}

// RefreshToken exchanges a refresh token for a new pair. A valid token works
// once. An expired one is rejected and the rollback leaves it stored until
// the owner's next login prunes it.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair *TokenPair
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		token, err := s.repomanager.RefreshTokens(tx).Consume(ctx, refreshToken)
		if err != nil {
			return err
		}
		if token.Expired(s.now()) {
			return common.ErrRefreshTokenExpired
		}
		pair, err = s.generateTokenPair(ctx, token.UserID, tx)
		return err
	})

	switch {
	case err == nil:
		return pair, nil
	case errors.Is(err, common.ErrorNotFound):
		return nil, common.ErrorUnauthorized
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return nil, err
	default:
		return nil, fmt.Errorf("%w: refresh token: %w", common.ErrPersistence, err)
	}
}

func (s *UserService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.signer.Issue(userID)
	if err != nil {
		return nil, err
	}
	refresh, err := common.MakeRandHexString(refreshTokenBytes)
	if err != nil {
		return nil, err
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, userID, refresh, s.now().Add(s.refreshTokenTTL)); err != nil {
		return nil, err
	}
	return &TokenPair{UserID: userID, AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", &raincheck.ValidationError{Field: "email", Message: "Please enter a valid email."}
	}
	return email, nil
}

// Package refreshtokens stores the opaque refresh tokens issued at login.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/rainyday/internal/server/models"
)

// Repository issues, consumes and prunes refresh tokens.
type Repository interface {
	// Create stores token for userID, valid until expiresAt.
	Create(ctx context.Context, userID, token string, expiresAt time.Time) error

	// Consume deletes token and returns what it was bound to, so a token can
	// be exchanged at most once. Unknown tokens yield common.ErrorNotFound.
	Consume(ctx context.Context, token string) (*models.RefreshToken, error)

	// DeleteExpired removes userID's tokens that expired at or before now.
	DeleteExpired(ctx context.Context, userID string, now time.Time) (int64, error)
}

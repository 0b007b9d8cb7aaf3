// Package rainchecks declares the server-side store for RainCheck records
// and its PostgreSQL implementation. Every operation is scoped to an owner.
package rainchecks

import (
	"context"
	"time"

	"github.com/dmitrijs2005/rainyday/internal/raincheck"
)

// Repository persists RainChecks.
type Repository interface {
	// Create inserts rc and returns it with ID, CreatedAt and Revision assigned.
	Create(ctx context.Context, rc *raincheck.RainCheck) (*raincheck.RainCheck, error)

	// GetByID returns common.ErrorNotFound when no record with id belongs to ownerID.
	GetByID(ctx context.Context, ownerID, id string) (*raincheck.RainCheck, error)

	// Update replaces the editable fields of the record identified by rc.ID
	// and rc.OwnerID and bumps its revision. A positive rc.Revision must
	// match the stored one, otherwise common.ErrVersionConflict is returned.
	Update(ctx context.Context, rc *raincheck.RainCheck) (*raincheck.RainCheck, error)

	// Delete removes the record; common.ErrorNotFound if there was none.
	Delete(ctx context.Context, ownerID, id string) error

	// Complete marks the record completed. The first completion time is kept
	// and is never earlier than the creation time.
	Complete(ctx context.Context, ownerID, id string, at time.Time) (*raincheck.RainCheck, error)

	// ListByStatus returns the owner's records with the given completion
	// state in insertion order.
	ListByStatus(ctx context.Context, ownerID string, completed bool) ([]*raincheck.RainCheck, error)
}

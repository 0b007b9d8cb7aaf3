// Package services contains the server-side business logic behind the gRPC
// handlers: RainCheck bookkeeping, accounts and sessions, and image storage.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/rainyday/internal/common"
	"github.com/dmitrijs2005/rainyday/internal/logging"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
	"github.com/dmitrijs2005/rainyday/internal/server/repositories/rainchecks"
	"github.com/dmitrijs2005/rainyday/internal/server/repositories/repomanager"
)

// RainCheckService applies the record rules to owner-scoped storage.
// Every method takes the owner id of the authenticated caller.
type RainCheckService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

func NewRainCheckService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *RainCheckService {
	return &RainCheckService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "rainchecks"),
		now:         time.Now,
	}
}

func (s *RainCheckService) repo() rainchecks.Repository {
	return s.repomanager.RainChecks(s.db)
}

// Create validates d and stores it as a new, incomplete RainCheck of ownerID.
func (s *RainCheckService) Create(ctx context.Context, ownerID string, d raincheck.Draft) (*raincheck.RainCheck, error) {
	rec, err := raincheck.Validate(d)
	if err != nil {
		return nil, err
	}

	rc, err := s.repo().Create(ctx, raincheck.New(ownerID, *rec))
	if err != nil {
		return nil, s.storeError(ctx, "create", err)
	}

	s.logger.Debug(ctx, "raincheck created", "id", rc.ID, "owner", ownerID)
	return rc, nil
}

// Update validates d and replaces the editable fields of record id. When
// revision is positive it must match the stored revision.
func (s *RainCheckService) Update(ctx context.Context, ownerID, id string, revision int64, d raincheck.Draft) (*raincheck.RainCheck, error) {
	rec, err := raincheck.Validate(d)
	if err != nil {
		return nil, err
	}

	rc := &raincheck.RainCheck{ID: id, OwnerID: ownerID, Revision: revision}
	rec.Apply(rc)

	updated, err := s.repo().Update(ctx, rc)
	if err != nil {
		return nil, s.storeError(ctx, "update", err)
	}
	return updated, nil
}

func (s *RainCheckService) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo().Delete(ctx, ownerID, id); err != nil {
		return s.storeError(ctx, "delete", err)
	}
	return nil
}

// Complete marks the record done. Completing twice keeps the first timestamp.
func (s *RainCheckService) Complete(ctx context.Context, ownerID, id string) (*raincheck.RainCheck, error) {
	rc, err := s.repo().Complete(ctx, ownerID, id, s.now())
	if err != nil {
		return nil, s.storeError(ctx, "complete", err)
	}
	return rc, nil
}

func (s *RainCheckService) Get(ctx context.Context, ownerID, id string) (*raincheck.RainCheck, error) {
	rc, err := s.repo().GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, s.storeError(ctx, "get", err)
	}
	return rc, nil
}

// ListPending returns the owner's incomplete records in insertion order.
func (s *RainCheckService) ListPending(ctx context.Context, ownerID string) ([]*raincheck.RainCheck, error) {
	return s.list(ctx, ownerID, false)
}

// ListCompleted returns the owner's completed records in insertion order.
func (s *RainCheckService) ListCompleted(ctx context.Context, ownerID string) ([]*raincheck.RainCheck, error) {
	return s.list(ctx, ownerID, true)
}

func (s *RainCheckService) list(ctx context.Context, ownerID string, completed bool) ([]*raincheck.RainCheck, error) {
	items, err := s.repo().ListByStatus(ctx, ownerID, completed)
	if err != nil {
		return nil, s.storeError(ctx, "list", err)
	}
	if items == nil {
		items = []*raincheck.RainCheck{}
	}
	return items, nil
}

// storeError passes not-found and conflicts through and reports everything
// else as a persistence failure.
func (s *RainCheckService) storeError(ctx context.Context, op string, err error) error {
	if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrVersionConflict) {
		return err
	}
	s.logger.Error(ctx, "store failure", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %w", common.ErrPersistence, op, err)
}

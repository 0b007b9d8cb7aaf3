package rainchecks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/rainyday/internal/common"
	"github.com/dmitrijs2005/rainyday/internal/dbx"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
	"github.com/google/uuid"
)

const columns = `id, owner_id, title, notes, emoji, reminder_type, reminder_value,
		image_uri, url, is_public, completed, completed_at, created_at, revision`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRainCheck(row scanner) (*raincheck.RainCheck, error) {
	var (
		rc            raincheck.RainCheck
		reminderType  string
		reminderValue sql.NullTime
		imageURI      sql.NullString
		completedAt   sql.NullTime
	)

	err := row.Scan(&rc.ID, &rc.OwnerID, &rc.Title, &rc.Notes, &rc.Emoji, &reminderType, &reminderValue,
		&imageURI, &rc.URL, &rc.IsPublic, &rc.Completed, &completedAt, &rc.CreatedAt, &rc.Revision)
	if err != nil {
		return nil, err
	}

	rc.ReminderType = raincheck.ReminderType(reminderType)
	if reminderValue.Valid {
		rc.ReminderValue = &reminderValue.Time
	}
	if imageURI.Valid {
		rc.ImageURI = &imageURI.String
	}
	if completedAt.Valid {
		rc.CompletedAt = &completedAt.Time
	}
	return &rc, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// validID filters ids that cannot exist before they reach a UUID column.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (r *PostgresRepository) Create(ctx context.Context, rc *raincheck.RainCheck) (*raincheck.RainCheck, error) {
	query :=
		`INSERT INTO rainchecks (owner_id, title, notes, emoji, reminder_type, reminder_value, image_uri, url, is_public)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, revision`

	out := *rc
	out.Completed = false
	out.CompletedAt = nil

	err := r.db.QueryRowContext(ctx, query,
		rc.OwnerID, rc.Title, rc.Notes, rc.Emoji, string(rc.ReminderType), nullTime(rc.ReminderValue),
		nullString(rc.ImageURI), rc.URL, rc.IsPublic,
	).Scan(&out.ID, &out.CreatedAt, &out.Revision)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &out, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, ownerID, id string) (*raincheck.RainCheck, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	query := `SELECT ` + columns + ` FROM rainchecks WHERE id = $1 AND owner_id = $2`

	rc, err := scanRainCheck(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rc, nil
}

func (r *PostgresRepository) Update(ctx context.Context, rc *raincheck.RainCheck) (*raincheck.RainCheck, error) {
	if !validID(rc.ID) {
		return nil, common.ErrorNotFound
	}

	query :=
		`UPDATE rainchecks
		 SET title = $3, notes = $4, emoji = $5, reminder_type = $6, reminder_value = $7,
		     image_uri = $8, url = $9, is_public = $10, revision = revision + 1
		 WHERE id = $1 AND owner_id = $2`
	args := []any{
		rc.ID, rc.OwnerID, rc.Title, rc.Notes, rc.Emoji, string(rc.ReminderType), nullTime(rc.ReminderValue),
		nullString(rc.ImageURI), rc.URL, rc.IsPublic,
	}
	if rc.Revision > 0 {
		query += ` AND revision = $11`
		args = append(args, rc.Revision)
	}
	query += ` RETURNING ` + columns

	out, err := scanRainCheck(r.db.QueryRowContext(ctx, query, args...))
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("db error: %w", err)
	}

	exists, err := r.exists(ctx, rc.OwnerID, rc.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrVersionConflict
	}
	return nil, common.ErrorNotFound
}

func (r *PostgresRepository) exists(ctx context.Context, ownerID, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM rainchecks WHERE id = $1 AND owner_id = $2)`

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(&ok); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return ok, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	if !validID(id) {
		return common.ErrorNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM rainchecks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := dbx.RowsAffected(res)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Complete(ctx context.Context, ownerID, id string, at time.Time) (*raincheck.RainCheck, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	query :=
		`UPDATE rainchecks
		 SET completed = TRUE,
		     completed_at = COALESCE(completed_at, GREATEST($3, created_at)),
		     revision = CASE WHEN completed THEN revision ELSE revision + 1 END
		 WHERE id = $1 AND owner_id = $2
		 RETURNING ` + columns

	rc, err := scanRainCheck(r.db.QueryRowContext(ctx, query, id, ownerID, at))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rc, nil
}

func (r *PostgresRepository) ListByStatus(ctx context.Context, ownerID string, completed bool) ([]*raincheck.RainCheck, error) {
	query := `SELECT ` + columns + ` FROM rainchecks
		 WHERE owner_id = $1 AND completed = $2
		 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, ownerID, completed)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*raincheck.RainCheck, 0)
	for rows.Next() {
		rc, err := scanRainCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

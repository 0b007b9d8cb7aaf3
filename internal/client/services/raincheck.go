package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/rainyday/internal/client/session"
	"github.com/dmitrijs2005/rainyday/internal/common"
	"github.com/dmitrijs2005/rainyday/internal/netx"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
	"github.com/dmitrijs2005/rainyday/internal/wire"
)

// RainCheckClient is the part of the backend client that manages records
// and images.
type RainCheckClient interface {
	CreateRainCheck(ctx context.Context, d raincheck.Draft) (*raincheck.RainCheck, error)
	UpdateRainCheck(ctx context.Context, id string, revision int64, d raincheck.Draft) (*raincheck.RainCheck, error)
	DeleteRainCheck(ctx context.Context, id string) error
	CompleteRainCheck(ctx context.Context, id string) (*raincheck.RainCheck, error)
	GetRainCheck(ctx context.Context, id string) (*raincheck.RainCheck, error)
	ListRainChecks(ctx context.Context, completed bool) ([]*raincheck.RainCheck, error)
	ImageUploadURL(ctx context.Context, contentType string) (wire.ImageUpload, error)
	ImageURL(ctx context.Context, key string) (string, error)
}

// RainCheckService is the signed-in user's view of their RainChecks. Every
// operation fails with common.ErrorUnauthorized when nobody is signed in,
// and drafts are validated before anything is sent.
type RainCheckService struct {
	client  RainCheckClient
	session session.Provider
	http    *http.Client
	now     func() time.Time
}

func NewRainCheckService(c RainCheckClient, p session.Provider) *RainCheckService {
	return &RainCheckService{client: c, session: p, http: http.DefaultClient, now: time.Now}
}

func (s *RainCheckService) signedIn() error {
	if s.session.CurrentUser() == nil {
		return common.ErrorUnauthorized
	}
	return nil
}

// validate applies the record rules plus the local "today or later" bound
// on fixed reminders.
func (s *RainCheckService) validate(d raincheck.Draft) (*raincheck.Record, error) {
	return raincheck.Validate(d, raincheck.WithMinimumReminder(raincheck.StartOfDay(s.now())))
}

func (s *RainCheckService) Create(ctx context.Context, d raincheck.Draft) (*raincheck.RainCheck, error) {
	if err := s.signedIn(); err != nil {
		return nil, err
	}
	rec, err := s.validate(d)
	if err != nil {
		return nil, err
	}
	return s.client.CreateRainCheck(ctx, rec.Draft)
}

// Update replaces the editable fields of id. Pass the revision the draft
// was based on to detect concurrent edits, or zero to overwrite.
//
// A fixed date that has already passed is accepted only when it is the
// date the record already carries, so other fields of an overdue record
// can still be edited.
func (s *RainCheckService) Update(ctx context.Context, id string, revision int64, d raincheck.Draft) (*raincheck.RainCheck, error) {
	if err := s.signedIn(); err != nil {
		return nil, err
	}
	rec, err := s.validate(d)
	var ve *raincheck.ValidationError
	if errors.As(err, &ve) && ve.Field == raincheck.FieldReminderValue && d.ReminderValue != nil {
		stored, gerr := s.client.GetRainCheck(ctx, id)
		if gerr != nil {
			return nil, gerr
		}
		if stored.ReminderType == raincheck.ReminderFixed && stored.ReminderValue != nil &&
			stored.ReminderValue.Equal(*d.ReminderValue) {
			rec, err = raincheck.Validate(d)
		}
	}
	if err != nil {
		return nil, err
	}
	return s.client.UpdateRainCheck(ctx, id, revision, rec.Draft)
}

func (s *RainCheckService) Delete(ctx context.Context, id string) error {
	if err := s.signedIn(); err != nil {
		return err
	}
	return s.client.DeleteRainCheck(ctx, id)
}

func (s *RainCheckService) Complete(ctx context.Context, id string) (*raincheck.RainCheck, error) {
	if err := s.signedIn(); err != nil {
		return nil, err
	}
	return s.client.CompleteRainCheck(ctx, id)
}

func (s *RainCheckService) Get(ctx context.Context, id string) (*raincheck.RainCheck, error) {
	if err := s.signedIn(); err != nil {
		return nil, err
	}
	return s.client.GetRainCheck(ctx, id)
}

func (s *RainCheckService) ListPending(ctx context.Context) ([]*raincheck.RainCheck, error) {
	return s.list(ctx, false)
}

func (s *RainCheckService) ListCompleted(ctx context.Context) ([]*raincheck.RainCheck, error) {
	return s.list(ctx, true)
}

func (s *RainCheckService) list(ctx context.Context, completed bool) ([]*raincheck.RainCheck, error) {
	if err := s.signedIn(); err != nil {
		return nil, err
	}
	items, err := s.client.ListRainChecks(ctx, completed)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*raincheck.RainCheck{}
	}
	return items, nil
}

// UploadImage stores the bytes read from body and returns the key to put
// into Draft.ImageURI.
func (s *RainCheckService) UploadImage(ctx context.Context, body io.Reader, size int64, contentType string) (string, error) {
	if err := s.signedIn(); err != nil {
		return "", err
	}
	up, err := s.client.ImageUploadURL(ctx, contentType)
	if err != nil {
		return "", err
	}
	if err := netx.Put(ctx, s.http, up.URL, contentType, body, size); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return up.Key, nil
}

// ImageURL returns a short-lived download link for an image key.
func (s *RainCheckService) ImageURL(ctx context.Context, key string) (string, error) {
	if err := s.signedIn(); err != nil {
		return "", err
	}
	return s.client.ImageURL(ctx, key)
}

// DownloadImage copies the image behind key into w.
func (s *RainCheckService) DownloadImage(ctx context.Context, key string, w io.Writer) (int64, error) {
	url, err := s.ImageURL(ctx, key)
	if err != nil {
		return 0, err
	}
	n, err := netx.Get(ctx, s.http, url, w)
	if err != nil {
		return n, fmt.Errorf("download image: %w", err)
	}
	return n, nil
}

// Package raincheck defines the RainCheck record, its field-level validation
// rules and the reminder resolution policy.
//
// A RainCheck is a deferred intention owned by a single user: a title, an
// emoji marker, optional notes, image and link, a visibility flag and a
// reminder strategy. The package is free of I/O; persistence and transport
// live in the server and client packages.
package raincheck

import "time"

// Field limits applied to trimmed input.
const (
	MaxTitleLength = 50
	MaxNotesLength = 280
)

// RainCheck is the persisted shape of a record.
type RainCheck struct {
	ID      string
	OwnerID string

	Title string
	Notes string
	Emoji string

	ReminderType  ReminderType
	ReminderValue *time.Time

	ImageURI *string
	URL      string
	IsPublic bool

	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time

	// Revision is bumped by the store on every update. Zero means unknown.
	Revision int64
}

// Draft is the user-editable part of a RainCheck as collected from input,
// before trimming and validation.
type Draft struct {
	Title         string
	Notes         string
	Emoji         string
	ReminderType  ReminderType
	ReminderValue *time.Time
	ImageURI      *string
	URL           string
	IsPublic      bool
}

// Record is a draft that passed Validate. Its text fields are trimmed and its
// reminder value is consistent with its reminder type.
type Record struct {
	Draft
}

// DraftOf returns the editable fields of rc, e.g. to prefill an edit form.
func DraftOf(rc RainCheck) Draft {
	return Draft{
		Title:         rc.Title,
		Notes:         rc.Notes,
		Emoji:         rc.Emoji,
		ReminderType:  rc.ReminderType,
		ReminderValue: rc.ReminderValue,
		ImageURI:      rc.ImageURI,
		URL:           rc.URL,
		IsPublic:      rc.IsPublic,
	}
}

// Apply copies the validated fields of rec onto rc, leaving identity,
// completion and creation fields untouched.
func (rec Record) Apply(rc *RainCheck) {
	rc.Title = rec.Title
	rc.Notes = rec.Notes
	rc.Emoji = rec.Emoji
	rc.ReminderType = rec.ReminderType
	rc.ReminderValue = rec.ReminderValue
	rc.ImageURI = rec.ImageURI
	rc.URL = rec.URL
	rc.IsPublic = rec.IsPublic
}

// New builds an incomplete RainCheck for ownerID from a validated record.
// ID, CreatedAt and Revision are left for the store to assign.
func New(ownerID string, rec Record) *RainCheck {
	rc := &RainCheck{OwnerID: ownerID}
	rec.Apply(rc)
	return rc
}

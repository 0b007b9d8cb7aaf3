package raincheck

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation error")

// Field names reported by ValidationError.
const (
	FieldTitle         = "title"
	FieldNotes         = "notes"
	FieldEmoji         = "emoji"
	FieldReminderType  = "reminderType"
	FieldReminderValue = "reminderValue"
)

// ValidationError describes the first field that failed validation. Message
// is meant to be shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

type validateOptions struct {
	minReminder *time.Time
}

// Option adjusts Validate.
type Option func(*validateOptions)

// WithMinimumReminder rejects fixed reminders earlier than t.
func WithMinimumReminder(t time.Time) Option {
	return func(o *validateOptions) {
		o.minReminder = &t
	}
}

// Validate normalizes d and checks it field by field, stopping at the first
// failure. Title, notes, emoji and url are trimmed, a blank image reference
// becomes nil and non-fixed reminders lose their value. Validating the
// returned record again yields the same record.
func Validate(d Draft, opts ...Option) (*Record, error) {
	var o validateOptions
	for _, opt := range opts {
		opt(&o)
	}

	rec := &Record{Draft: Draft{
		Title:        strings.TrimSpace(d.Title),
		Notes:        strings.TrimSpace(d.Notes),
		Emoji:        strings.TrimSpace(d.Emoji),
		ReminderType: d.ReminderType,
		URL:          strings.TrimSpace(d.URL),
		IsPublic:     d.IsPublic,
	}}

	if d.ImageURI != nil {
		if uri := strings.TrimSpace(*d.ImageURI); uri != "" {
			rec.ImageURI = &uri
		}
	}

	if rec.Title == "" {
		return nil, invalid(FieldTitle, "Title is required")
	}
	if utf8.RuneCountInString(rec.Title) > MaxTitleLength {
		return nil, invalid(FieldTitle, "Title must be 50 characters or less.")
	}
	if utf8.RuneCountInString(rec.Notes) > MaxNotesLength {
		return nil, invalid(FieldNotes, "Description must be 280 characters or less.")
	}
	if !IsSingleEmoji(rec.Emoji) {
		return nil, invalid(FieldEmoji, "Please enter a valid emoji.")
	}
	if !rec.ReminderType.Valid() {
		return nil, invalid(FieldReminderType, "Please choose a reminder type.")
	}

	if rec.ReminderType == ReminderFixed {
		if d.ReminderValue == nil {
			return nil, invalid(FieldReminderValue, "Please select a reminder date.")
		}
		at := *d.ReminderValue
		if o.minReminder != nil && at.Before(*o.minReminder) {
			return nil, invalid(FieldReminderValue, "Reminder date must be today or later.")
		}
		rec.ReminderValue = &at
	}

	return rec, nil
}

package raincheck

import (
	"fmt"
	"time"
)

// ReminderType selects how a RainCheck's reminder is resolved.
type ReminderType string

const (
	// ReminderRain waits for a weather signal. No such signal is wired.
	ReminderRain ReminderType = "rain"
	// ReminderRandom fires at an unspecified future moment. No scheduler is wired.
	ReminderRandom ReminderType = "random"
	// ReminderFixed fires at ReminderValue.
	ReminderFixed ReminderType = "fixed"
)

// ReminderTypes lists the variants in the order they are offered to users.
var ReminderTypes = []ReminderType{ReminderRain, ReminderRandom, ReminderFixed}

// ParseReminderType returns the ReminderType named by s.
func ParseReminderType(s string) (ReminderType, error) {
	switch t := ReminderType(s); t {
	case ReminderRain, ReminderRandom, ReminderFixed:
		return t, nil
	default:
		return "", fmt.Errorf("unknown reminder type %q", s)
	}
}

func (t ReminderType) Valid() bool {
	_, err := ParseReminderType(string(t))
	return err == nil
}

func (t ReminderType) String() string { return string(t) }

// Reminder is the resolved form of a reminder strategy. The set of
// implementations is closed: FixedReminder, RandomReminder and RainReminder.
type Reminder interface {
	Type() ReminderType
	// Trigger returns the moment the reminder fires, if the variant defines one.
	Trigger() (time.Time, bool)
	// DataOnly reports that the variant is stored but has no delivery
	// mechanism behind it.
	DataOnly() bool

	reminder()
}

// FixedReminder fires exactly once, at At.
type FixedReminder struct {
	At time.Time
}

func (r FixedReminder) Type() ReminderType         { return ReminderFixed }
func (r FixedReminder) Trigger() (time.Time, bool) { return r.At, true }
func (r FixedReminder) DataOnly() bool             { return false }
func (FixedReminder) reminder()                    {}

// RandomReminder is data-only: resolving it is left to a scheduler that does
// not exist in this system.
type RandomReminder struct{}

func (RandomReminder) Type() ReminderType         { return ReminderRandom }
func (RandomReminder) Trigger() (time.Time, bool) { return time.Time{}, false }
func (RandomReminder) DataOnly() bool             { return true }
func (RandomReminder) reminder()                  {}

// RainReminder is data-only: it is conditioned on weather, and no weather
// integration exists.
type RainReminder struct{}

func (RainReminder) Type() ReminderType         { return ReminderRain }
func (RainReminder) Trigger() (time.Time, bool) { return time.Time{}, false }
func (RainReminder) DataOnly() bool             { return true }
func (RainReminder) reminder()                  {}

// NewReminder resolves a stored (type, value) pair. A fixed reminder needs a
// value; the other variants ignore it.
func NewReminder(t ReminderType, value *time.Time) (Reminder, error) {
	switch t {
	case ReminderFixed:
		if value == nil {
			return nil, fmt.Errorf("fixed reminder without a value")
		}
		return FixedReminder{At: *value}, nil
	case ReminderRandom:
		return RandomReminder{}, nil
	case ReminderRain:
		return RainReminder{}, nil
	default:
		return nil, fmt.Errorf("unknown reminder type %q", t)
	}
}

// Reminder resolves the record's reminder strategy. Records that passed
// validation always resolve; a nil result means the record is malformed.
func (rc RainCheck) Reminder() Reminder {
	r, err := NewReminder(rc.ReminderType, rc.ReminderValue)
	if err != nil {
		return nil
	}
	return r
}

// IsDue reports whether rc is pending and its fixed reminder time has passed.
func IsDue(rc RainCheck, now time.Time) bool {
	if rc.Completed {
		return false
	}
	r := rc.Reminder()
	if r == nil {
		return false
	}
	at, ok := r.Trigger()
	return ok && !at.After(now)
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

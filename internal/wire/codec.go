// Package wire converts RainyDay values to and from the generated protobuf
// messages of the RainyDay service.
//
// Absent timestamps travel as unset fields and an absent image key as an
// empty string. Decoding a stored record is strict: a missing id or creation
// time, an unknown reminder type or an out of range timestamp is rejected
// with ErrMalformed. Drafts are decoded leniently so that raincheck.Validate
// can report content problems field by field.
package wire

import (
	"errors"
	"fmt"
	"time"

	pb "github.com/dmitrijs2005/rainyday/internal/proto"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ErrMalformed reports a message that does not match the expected shape.
var ErrMalformed = errors.New("malformed message")

// RainCheckToProto renders rc as a message.
func RainCheckToProto(rc *raincheck.RainCheck) *pb.RainCheck {
	return &pb.RainCheck{
		Id:            rc.ID,
		OwnerId:       rc.OwnerID,
		Title:         rc.Title,
		Notes:         rc.Notes,
		Emoji:         rc.Emoji,
		ReminderType:  rc.ReminderType.String(),
		ReminderValue: timestamp(rc.ReminderValue),
		ImageUri:      deref(rc.ImageURI),
		Url:           rc.URL,
		IsPublic:      rc.IsPublic,
		Completed:     rc.Completed,
		CompletedAt:   timestamp(rc.CompletedAt),
		CreatedAt:     timestamppb.New(rc.CreatedAt),
		Revision:      rc.Revision,
	}
}

// RainCheckFromProto parses a message produced by RainCheckToProto.
func RainCheckFromProto(m *pb.RainCheck) (*raincheck.RainCheck, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: empty record", ErrMalformed)
	}
	if m.GetId() == "" {
		return nil, fmt.Errorf("%w: record id is required", ErrMalformed)
	}
	if m.GetCreatedAt() == nil {
		return nil, fmt.Errorf("%w: record %s has no creation time", ErrMalformed, m.GetId())
	}
	if m.GetRevision() < 0 {
		return nil, fmt.Errorf("%w: record %s has a negative revision", ErrMalformed, m.GetId())
	}

	rt, err := raincheck.ParseReminderType(m.GetReminderType())
	if err != nil {
		return nil, fmt.Errorf("%w: record %s: %v", ErrMalformed, m.GetId(), err)
	}

	rc := &raincheck.RainCheck{
		ID:           m.GetId(),
		OwnerID:      m.GetOwnerId(),
		Title:        m.GetTitle(),
		Notes:        m.GetNotes(),
		Emoji:        m.GetEmoji(),
		ReminderType: rt,
		ImageURI:     optional(m.GetImageUri()),
		URL:          m.GetUrl(),
		IsPublic:     m.GetIsPublic(),
		Completed:    m.GetCompleted(),
		Revision:     m.GetRevision(),
	}

	var created *time.Time
	for _, f := range []struct {
		ts  *timestamppb.Timestamp
		dst **time.Time
	}{
		{m.GetReminderValue(), &rc.ReminderValue},
		{m.GetCompletedAt(), &rc.CompletedAt},
		{m.GetCreatedAt(), &created},
	} {
		if *f.dst, err = fromTimestamp(f.ts); err != nil {
			return nil, fmt.Errorf("record %s: %w", m.GetId(), err)
		}
	}
	rc.CreatedAt = *created

	return rc, nil
}

// DraftToProto renders the editable fields of d.
func DraftToProto(d raincheck.Draft) *pb.Draft {
	return &pb.Draft{
		Title:         d.Title,
		Notes:         d.Notes,
		Emoji:         d.Emoji,
		ReminderType:  d.ReminderType.String(),
		ReminderValue: timestamp(d.ReminderValue),
		ImageUri:      deref(d.ImageURI),
		Url:           d.URL,
		IsPublic:      d.IsPublic,
	}
}

// DraftFromProto parses a draft. The reminder type is passed through
// unchecked so that raincheck.Validate reports it.
func DraftFromProto(m *pb.Draft) (raincheck.Draft, error) {
	if m == nil {
		return raincheck.Draft{}, fmt.Errorf("%w: draft is required", ErrMalformed)
	}
	at, err := fromTimestamp(m.GetReminderValue())
	if err != nil {
		return raincheck.Draft{}, err
	}
	return raincheck.Draft{
		Title:         m.GetTitle(),
		Notes:         m.GetNotes(),
		Emoji:         m.GetEmoji(),
		ReminderType:  raincheck.ReminderType(m.GetReminderType()),
		ReminderValue: at,
		ImageURI:      optional(m.GetImageUri()),
		URL:           m.GetUrl(),
		IsPublic:      m.GetIsPublic(),
	}, nil
}

// ListToProto renders items in order.
func ListToProto(items []*raincheck.RainCheck) *pb.ListRainChecksResponse {
	out := make([]*pb.RainCheck, 0, len(items))
	for _, rc := range items {
		out = append(out, RainCheckToProto(rc))
	}
	return &pb.ListRainChecksResponse{RainChecks: out}
}

// ListFromProto parses a list produced by ListToProto.
func ListFromProto(m *pb.ListRainChecksResponse) ([]*raincheck.RainCheck, error) {
	items := make([]*raincheck.RainCheck, 0, len(m.GetRainChecks()))
	for i, r := range m.GetRainChecks() {
		rc, err := RainCheckFromProto(r)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, rc)
	}
	return items, nil
}

func timestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func fromTimestamp(ts *timestamppb.Timestamp) (*time.Time, error) {
	if ts == nil {
		return nil, nil
	}
	if err := ts.CheckValid(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	t := ts.AsTime()
	return &t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

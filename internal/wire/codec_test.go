package wire

import (
	"testing"
	"time"

	pb "github.com/dmitrijs2005/rainyday/internal/proto"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func ptr[T any](v T) *T { return &v }

func sampleRainCheck() *raincheck.RainCheck {
	created := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	remind := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
	return &raincheck.RainCheck{
		ID:            "5d0c6f2e-7e0e-4ad2-8c1e-0c1f8c1b0f11",
		OwnerID:       "owner-1",
		Title:         "Picnic",
		Notes:         "Bring the blanket",
		Emoji:         "🧺",
		ReminderType:  raincheck.ReminderFixed,
		ReminderValue: &remind,
		ImageURI:      ptr("images/owner-1/2025/04/02/abc"),
		URL:           "https://example.com",
		IsPublic:      true,
		CreatedAt:     created,
		Revision:      3,
	}
}

func TestRainCheck_RoundTrip(t *testing.T) {
	in := sampleRainCheck()

	out, err := RainCheckFromProto(RainCheckToProto(in))
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-in +out):\n%s", diff)
	}

	done := time.Date(2025, 4, 3, 8, 0, 0, 0, time.UTC)
	in.Completed, in.CompletedAt = true, &done
	in.ImageURI = nil
	in.ReminderType, in.ReminderValue = raincheck.ReminderRain, nil

	out, err = RainCheckFromProto(RainCheckToProto(in))
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-in +out):\n%s", diff)
	}
}

func TestRainCheckToProto_LeavesAbsentValuesUnset(t *testing.T) {
	rc := sampleRainCheck()
	rc.ImageURI = nil
	rc.ReminderType, rc.ReminderValue = raincheck.ReminderRandom, nil

	m := RainCheckToProto(rc)
	assert.Nil(t, m.GetReminderValue())
	assert.Nil(t, m.GetCompletedAt())
	assert.Empty(t, m.GetImageUri())
	assert.Equal(t, "random", m.GetReminderType())
	assert.True(t, m.GetCreatedAt().AsTime().Equal(rc.CreatedAt))
}

func TestRainCheckFromProto_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *pb.RainCheck)
	}{
		{"missing id", func(m *pb.RainCheck) { m.Id = "" }},
		{"missing created", func(m *pb.RainCheck) { m.CreatedAt = nil }},
		{"bad reminder type", func(m *pb.RainCheck) { m.ReminderType = "weekly" }},
		{"empty reminder type", func(m *pb.RainCheck) { m.ReminderType = "" }},
		{"out of range timestamp", func(m *pb.RainCheck) { m.ReminderValue = &timestamppb.Timestamp{Seconds: 1 << 62} }},
		{"bad nanos", func(m *pb.RainCheck) { m.CompletedAt = &timestamppb.Timestamp{Nanos: -1} }},
		{"negative revision", func(m *pb.RainCheck) { m.Revision = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := RainCheckToProto(sampleRainCheck())
			tt.mutate(m)
			_, err := RainCheckFromProto(m)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}

	_, err := RainCheckFromProto(nil)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestDraft_RoundTrip(t *testing.T) {
	at := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	in := raincheck.Draft{
		Title:         " Concert ",
		Notes:         "n",
		Emoji:         "🎸",
		ReminderType:  raincheck.ReminderFixed,
		ReminderValue: &at,
		ImageURI:      ptr("images/u/1"),
		URL:           "u",
		IsPublic:      true,
	}

	out, err := DraftFromProto(DraftToProto(in))
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("draft mismatch (-in +out):\n%s", diff)
	}
}

func TestDraftFromProto_EmptyImageIsAbsent(t *testing.T) {
	d, err := DraftFromProto(DraftToProto(raincheck.Draft{Title: "x", ImageURI: ptr("")}))
	require.NoError(t, err)
	assert.Nil(t, d.ImageURI)
}

func TestDraftFromProto_LeavesContentChecksToValidation(t *testing.T) {
	d, err := DraftFromProto(&pb.Draft{ReminderType: "weekly"})
	require.NoError(t, err)
	assert.Equal(t, raincheck.ReminderType("weekly"), d.ReminderType)

	_, err = raincheck.Validate(d)
	require.ErrorIs(t, err, raincheck.ErrValidation)
}

func TestDraftFromProto_Rejects(t *testing.T) {
	_, err := DraftFromProto(nil)
	require.ErrorIs(t, err, ErrMalformed)

	_, err = DraftFromProto(&pb.Draft{ReminderValue: &timestamppb.Timestamp{Nanos: 2e9}})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestList_RoundTripPreservesOrder(t *testing.T) {
	a := sampleRainCheck()
	b := sampleRainCheck()
	b.ID, b.Title = "second", "Second"

	out, err := ListFromProto(ListToProto([]*raincheck.RainCheck{a, b}))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, a.ID, out[0].ID)
	assert.Equal(t, "second", out[1].ID)

	empty, err := ListFromProto(ListToProto(nil))
	require.NoError(t, err)
	assert.Empty(t, empty)

	bad := ListToProto([]*raincheck.RainCheck{a})
	bad.RainChecks = append(bad.RainChecks, &pb.RainCheck{Id: "no-created"})
	_, err = ListFromProto(bad)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestAuthMessages(t *testing.T) {
	sess := Session{UserID: "u", AccessToken: "at", RefreshToken: "rt"}
	got, err := SessionFromProto(SessionToProto(sess))
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	_, err = SessionFromProto(&pb.Session{UserId: "u", AccessToken: "at"})
	require.ErrorIs(t, err, ErrMalformed)

	up := ImageUpload{Key: "images/u/1", URL: "http://s3/put"}
	gotUp, err := ImageUploadFromProto(ImageUploadToProto(up))
	require.NoError(t, err)
	assert.Equal(t, up, gotUp)

	_, err = ImageUploadFromProto(&pb.GetImageUploadURLResponse{Key: "k"})
	require.ErrorIs(t, err, ErrMalformed)
}

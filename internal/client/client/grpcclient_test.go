package client

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/rainyday/internal/common"
	pb "github.com/dmitrijs2005/rainyday/internal/proto"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
	"github.com/dmitrijs2005/rainyday/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// stubServer accepts access token "A2" only; "A1" is reported as expired.
type stubServer struct {
	pb.UnimplementedRainyDayServer

	mu        sync.Mutex
	refreshes []string
	tokens    []string
	createErr error
	rows      []*raincheck.RainCheck
}

func (s *stubServer) token(ctx context.Context) string {
	md, _ := metadata.FromIncomingContext(ctx)
	v := md.Get(common.AccessTokenHeaderName)
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(v) == 0 {
		s.tokens = append(s.tokens, "")
		return ""
	}
	s.tokens = append(s.tokens, v[0])
	return v[0]
}

func (s *stubServer) authorize(ctx context.Context) error {
	switch s.token(ctx) {
	case "A2":
		return nil
	case "A1":
		return status.Error(codes.Unauthenticated, "token expired")
	default:
		return status.Error(codes.Unauthenticated, "unauthorized")
	}
}

func (s *stubServer) Ping(context.Context, *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{}, nil
}

func (s *stubServer) Login(_ context.Context, req *pb.LoginRequest) (*pb.Session, error) {
	if req.GetPassword() != "correct horse" {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	return wire.SessionToProto(wire.Session{UserID: "u1", AccessToken: "A1", RefreshToken: "R1"}), nil
}

func (s *stubServer) Register(context.Context, *pb.RegisterRequest) (*pb.Session, error) {
	st := status.New(codes.InvalidArgument, "Please enter a valid email.")
	st, _ = st.WithDetails(&errdetails.BadRequest{FieldViolations: []*errdetails.BadRequest_FieldViolation{
		{Field: "email", Description: "Please enter a valid email."},
	}})
	return nil, st.Err()
}

func (s *stubServer) RefreshToken(_ context.Context, req *pb.RefreshTokenRequest) (*pb.Session, error) {
	s.mu.Lock()
	s.refreshes = append(s.refreshes, req.GetRefreshToken())
	s.mu.Unlock()
	if req.GetRefreshToken() != "R1" {
		return nil, status.Error(codes.Unauthenticated, "refresh token expired")
	}
	return wire.SessionToProto(wire.Session{UserID: "u1", AccessToken: "A2", RefreshToken: "R2"}), nil
}

func (s *stubServer) CreateRainCheck(ctx context.Context, req *pb.CreateRainCheckRequest) (*pb.RainCheck, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	if s.createErr != nil {
		return nil, s.createErr
	}
	d, err := wire.DraftFromProto(req.GetDraft())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	rc := &raincheck.RainCheck{
		ID:           "rc-1",
		OwnerID:      "u1",
		Title:        d.Title,
		Emoji:        d.Emoji,
		ReminderType: d.ReminderType,
		CreatedAt:    time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Revision:     1,
	}
	s.mu.Lock()
	s.rows = append(s.rows, rc)
	s.mu.Unlock()
	return wire.RainCheckToProto(rc), nil
}

func (s *stubServer) ListRainChecks(ctx context.Context, req *pb.ListRainChecksRequest) (*pb.ListRainChecksResponse, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	if req.GetCompleted() {
		return wire.ListToProto(nil), nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return wire.ListToProto(s.rows), nil
}

func (s *stubServer) GetRainCheck(ctx context.Context, _ *pb.RainCheckRequest) (*pb.RainCheck, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	return nil, status.Error(codes.NotFound, "not found")
}

func (s *stubServer) UpdateRainCheck(ctx context.Context, _ *pb.UpdateRainCheckRequest) (*pb.RainCheck, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	return nil, status.Error(codes.Aborted, "version conflict")
}

func (s *stubServer) GetImageUploadURL(ctx context.Context, req *pb.GetImageUploadURLRequest) (*pb.GetImageUploadURLResponse, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	return wire.ImageUploadToProto(wire.ImageUpload{Key: "images/u1/k", URL: "http://s3/put?ct=" + req.GetContentType()}), nil
}

func (s *stubServer) GetImageURL(ctx context.Context, req *pb.GetImageURLRequest) (*pb.GetImageURLResponse, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}
	return &pb.GetImageURLResponse{Url: "http://s3/get/" + req.GetKey()}, nil
}

func newTestClient(t *testing.T, srv *stubServer) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	pb.RegisterRainyDayServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", 5*time.Second,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestPing(t *testing.T) {
	c := newTestClient(t, &stubServer{})
	require.NoError(t, c.Ping(context.Background()))
}

func TestLogin_KeepsSession(t *testing.T) {
	c := newTestClient(t, &stubServer{})

	s, err := c.Login(context.Background(), "ada@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, wire.Session{UserID: "u1", AccessToken: "A1", RefreshToken: "R1"}, s)

	access, refresh := c.tokens()
	assert.Equal(t, "A1", access)
	assert.Equal(t, "R1", refresh)
}

func TestLogin_BadCredentials(t *testing.T) {
	c := newTestClient(t, &stubServer{})

	_, err := c.Login(context.Background(), "ada@example.com", "nope")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegister_RebuildsValidationError(t *testing.T) {
	c := newTestClient(t, &stubServer{})

	_, err := c.Register(context.Background(), "not-an-email", "password1")
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.ErrorIs(t, err, raincheck.ErrValidation)

	var verr *raincheck.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "email", verr.Field)
	assert.Equal(t, "Please enter a valid email.", verr.Message)
}

func TestExpiredTokenIsRefreshedOnce(t *testing.T) {
	srv := &stubServer{}
	c := newTestClient(t, srv)
	c.SetSession(wire.Session{AccessToken: "A1", RefreshToken: "R1"})

	var rotated wire.Session
	c.OnRefresh(func(_ context.Context, s wire.Session) { rotated = s })

	rc, err := c.CreateRainCheck(context.Background(), raincheck.Draft{Title: "Hike", Emoji: "🥾", ReminderType: raincheck.ReminderRain})
	require.NoError(t, err)
	assert.Equal(t, "rc-1", rc.ID)
	assert.Equal(t, "Hike", rc.Title)

	assert.Equal(t, []string{"R1"}, srv.refreshes)
	assert.Equal(t, []string{"A1", "A2"}, srv.tokens)
	assert.Equal(t, "R2", rotated.RefreshToken)

	access, refresh := c.tokens()
	assert.Equal(t, "A2", access)
	assert.Equal(t, "R2", refresh)
}

func TestRefreshOnlySessionExchangesTokenFirst(t *testing.T) {
	srv := &stubServer{}
	c := newTestClient(t, srv)
	c.SetSession(wire.Session{UserID: "u1", RefreshToken: "R1"})

	var rotated wire.Session
	c.OnRefresh(func(_ context.Context, s wire.Session) { rotated = s })

	require.NoError(t, c.Ping(context.Background()))
	assert.Empty(t, srv.refreshes)

	_, err := c.ListRainChecks(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"R1"}, srv.refreshes)
	assert.Equal(t, []string{"A2"}, srv.tokens)
	assert.Equal(t, "R2", rotated.RefreshToken)
}

func TestRefreshOnlySessionRejected(t *testing.T) {
	srv := &stubServer{}
	c := newTestClient(t, srv)
	c.SetSession(wire.Session{RefreshToken: "stale"})

	_, err := c.GetRainCheck(context.Background(), "x")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, []string{"stale"}, srv.refreshes)
	assert.Empty(t, srv.tokens)
}

func TestExpiredTokenWithoutRefreshToken(t *testing.T) {
	srv := &stubServer{}
	c := newTestClient(t, srv)
	c.SetSession(wire.Session{AccessToken: "A1"})

	_, err := c.ListRainChecks(context.Background(), false)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, srv.refreshes)
}

func TestRefreshFailureIsReturned(t *testing.T) {
	srv := &stubServer{}
	c := newTestClient(t, srv)
	c.SetSession(wire.Session{AccessToken: "A1", RefreshToken: "stale"})

	_, err := c.ListRainChecks(context.Background(), false)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, []string{"stale"}, srv.refreshes)
	assert.Equal(t, []string{"A1"}, srv.tokens)
}

func TestNoTokenAfterClearSession(t *testing.T) {
	srv := &stubServer{}
	c := newTestClient(t, srv)
	c.SetSession(wire.Session{AccessToken: "A2", RefreshToken: "R2"})
	c.ClearSession()

	_, err := c.GetRainCheck(context.Background(), "x")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, []string{""}, srv.tokens)
}

func TestRainCheckCalls(t *testing.T) {
	srv := &stubServer{}
	c := newTestClient(t, srv)
	c.SetSession(wire.Session{AccessToken: "A2", RefreshToken: "R2"})
	ctx := context.Background()

	_, err := c.CreateRainCheck(ctx, raincheck.Draft{Title: "Read", Emoji: "📚", ReminderType: raincheck.ReminderRandom})
	require.NoError(t, err)

	pending, err := c.ListRainChecks(ctx, false)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Read", pending[0].Title)

	done, err := c.ListRainChecks(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, done)

	_, err = c.GetRainCheck(ctx, "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = c.UpdateRainCheck(ctx, "rc-1", 3, raincheck.Draft{Title: "Read", Emoji: "📚", ReminderType: raincheck.ReminderRandom})
	require.ErrorIs(t, err, common.ErrVersionConflict)
}

func TestImageCalls(t *testing.T) {
	c := newTestClient(t, &stubServer{})
	c.SetSession(wire.Session{AccessToken: "A2"})
	ctx := context.Background()

	up, err := c.ImageUploadURL(ctx, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "images/u1/k", up.Key)
	assert.Equal(t, "http://s3/put?ct=image/png", up.URL)

	url, err := c.ImageURL(ctx, up.Key)
	require.NoError(t, err)
	assert.Equal(t, "http://s3/get/images/u1/k", url)
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))
	assert.Equal(t, ErrUnauthorized, mapError(status.Error(codes.Unauthenticated, "x")))
	assert.Equal(t, ErrUnauthorized, mapError(status.Error(codes.PermissionDenied, "x")))
	assert.Equal(t, ErrUnavailable, mapError(status.Error(codes.Unavailable, "x")))
	assert.Equal(t, ErrUnavailable, mapError(status.Error(codes.DeadlineExceeded, "x")))
	assert.Equal(t, common.ErrorNotFound, mapError(status.Error(codes.NotFound, "x")))
	assert.Equal(t, common.ErrorAlreadyExists, mapError(status.Error(codes.AlreadyExists, "x")))
	assert.Equal(t, common.ErrVersionConflict, mapError(status.Error(codes.Aborted, "x")))

	err := mapError(status.Error(codes.InvalidArgument, "id is required"))
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, raincheck.ErrValidation)
	assert.ErrorContains(t, err, "id is required")

	assert.ErrorContains(t, mapError(status.Error(codes.Internal, "internal error")), "rpc error:")
	assert.ErrorContains(t, mapError(errors.New("plain")), "rpc error:")
}

func TestServerDown(t *testing.T) {
	c, err := NewGRPCClient("passthrough:///bufnet", 200*time.Millisecond,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return nil, errors.New("refused")
		}))
	require.NoError(t, err)
	defer c.Close()

	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

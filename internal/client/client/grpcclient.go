package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/rainyday/internal/common"
	pb "github.com/dmitrijs2005/rainyday/internal/proto"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
	"github.com/dmitrijs2005/rainyday/internal/wire"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RefreshFunc is called after the interceptor rotated the session, so the
// new refresh token can be persisted.
type RefreshFunc func(ctx context.Context, s wire.Session)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.RainyDayClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    RefreshFunc
}

// NewGRPCClient connects lazily to endpointURL. A positive timeout bounds
// every call. Extra dial options are appended after the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewRainyDayClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// OnRefresh registers fn to be told about rotated sessions.
func (c *GRPCClient) OnRefresh(fn RefreshFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onRefresh = fn
}

// SetSession replaces the tokens used for authenticated calls.
func (c *GRPCClient) SetSession(s wire.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = s.AccessToken
	c.refreshToken = s.RefreshToken
}

// ClearSession forgets both tokens.
func (c *GRPCClient) ClearSession() {
	c.SetSession(wire.Session{})
}

func (c *GRPCClient) tokens() (access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}
	return metadata.NewOutgoingContext(ctx, md)
}

// isTokenExpired matches the status the server returns for an expired
// access token. An expired refresh token has a different message.
func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

// publicMethods are called without an access token.
var publicMethods = map[string]bool{
	pb.RainyDay_Ping_FullMethodName:         true,
	pb.RainyDay_Register_FullMethodName:     true,
	pb.RainyDay_Login_FullMethodName:        true,
	pb.RainyDay_RefreshToken_FullMethodName: true,
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := c.tokens()

	// a session resumed offline has only its refresh token
	if access == "" && refresh != "" && !publicMethods[method] {
		s, err := c.rotate(ctx, refresh)
		if err != nil {
			return err
		}
		access = s.AccessToken
	}

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) || refresh == "" {
		return err
	}

	s, err := c.rotate(ctx, refresh)
	if err != nil {
		return err
	}
	return invoker(withAccessToken(ctx, s.AccessToken), method, req, reply, cc, opts...)
}

// rotate exchanges refresh for a new session, keeps it and reports it to
// the OnRefresh hook.
func (c *GRPCClient) rotate(ctx context.Context, refresh string) (wire.Session, error) {
	resp, err := c.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return wire.Session{}, err
	}
	s, err := wire.SessionFromProto(resp)
	if err != nil {
		return wire.Session{}, err
	}

	c.mu.Lock()
	c.accessToken = s.AccessToken
	c.refreshToken = s.RefreshToken
	onRefresh := c.onRefresh
	c.mu.Unlock()

	if onRefresh != nil {
		onRefresh(ctx, s)
	}
	return s, nil
}

func (c *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.client.Ping(ctx, &pb.PingRequest{})
	return mapError(err)
}

// Register creates the account and keeps the returned session.
func (c *GRPCClient) Register(ctx context.Context, email, password string) (wire.Session, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return wire.Session{}, mapError(err)
	}
	return c.keepSession(resp)
}

func (c *GRPCClient) Login(ctx context.Context, email, password string) (wire.Session, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return wire.Session{}, mapError(err)
	}
	return c.keepSession(resp)
}

// Refresh exchanges a saved refresh token for a new session.
func (c *GRPCClient) Refresh(ctx context.Context, refreshToken string) (wire.Session, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return wire.Session{}, mapError(err)
	}
	return c.keepSession(resp)
}

func (c *GRPCClient) keepSession(resp *pb.Session) (wire.Session, error) {
	s, err := wire.SessionFromProto(resp)
	if err != nil {
		return wire.Session{}, fmt.Errorf("decode session: %w", err)
	}
	c.SetSession(s)
	return s, nil
}

func (c *GRPCClient) CreateRainCheck(ctx context.Context, d raincheck.Draft) (*raincheck.RainCheck, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.CreateRainCheck(ctx, &pb.CreateRainCheckRequest{Draft: wire.DraftToProto(d)})
	if err != nil {
		return nil, mapError(err)
	}
	return decodeRainCheck(resp)
}

// UpdateRainCheck replaces the editable fields of id. A zero revision skips
// the conflict check.
func (c *GRPCClient) UpdateRainCheck(ctx context.Context, id string, revision int64, d raincheck.Draft) (*raincheck.RainCheck, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.UpdateRainCheck(ctx, &pb.UpdateRainCheckRequest{
		Id:       id,
		Revision: revision,
		Draft:    wire.DraftToProto(d),
	})
	if err != nil {
		return nil, mapError(err)
	}
	return decodeRainCheck(resp)
}

func (c *GRPCClient) DeleteRainCheck(ctx context.Context, id string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.client.DeleteRainCheck(ctx, &pb.RainCheckRequest{Id: id})
	return mapError(err)
}

func (c *GRPCClient) CompleteRainCheck(ctx context.Context, id string) (*raincheck.RainCheck, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.CompleteRainCheck(ctx, &pb.RainCheckRequest{Id: id})
	if err != nil {
		return nil, mapError(err)
	}
	return decodeRainCheck(resp)
}

func (c *GRPCClient) GetRainCheck(ctx context.Context, id string) (*raincheck.RainCheck, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.GetRainCheck(ctx, &pb.RainCheckRequest{Id: id})
	if err != nil {
		return nil, mapError(err)
	}
	return decodeRainCheck(resp)
}

// ListRainChecks returns the caller's pending or completed records in
// creation order.
func (c *GRPCClient) ListRainChecks(ctx context.Context, completed bool) ([]*raincheck.RainCheck, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.ListRainChecks(ctx, &pb.ListRainChecksRequest{Completed: completed})
	if err != nil {
		return nil, mapError(err)
	}
	items, err := wire.ListFromProto(resp)
	if err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return items, nil
}

func (c *GRPCClient) ImageUploadURL(ctx context.Context, contentType string) (wire.ImageUpload, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.GetImageUploadURL(ctx, &pb.GetImageUploadURLRequest{ContentType: contentType})
	if err != nil {
		return wire.ImageUpload{}, mapError(err)
	}
	u, err := wire.ImageUploadFromProto(resp)
	if err != nil {
		return wire.ImageUpload{}, fmt.Errorf("decode upload: %w", err)
	}
	return u, nil
}

func (c *GRPCClient) ImageURL(ctx context.Context, key string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.GetImageURL(ctx, &pb.GetImageURLRequest{Key: key})
	if err != nil {
		return "", mapError(err)
	}
	return resp.GetUrl(), nil
}

func decodeRainCheck(resp *pb.RainCheck) (*raincheck.RainCheck, error) {
	rc, err := wire.RainCheckFromProto(resp)
	if err != nil {
		return nil, fmt.Errorf("decode raincheck: %w", err)
	}
	return rc, nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.InvalidArgument:
		if verr := validationDetail(st); verr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, verr)
		}
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.Aborted:
		return common.ErrVersionConflict
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// validationDetail rebuilds the field error attached by the server.
func validationDetail(st *status.Status) *raincheck.ValidationError {
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok || len(br.GetFieldViolations()) == 0 {
			continue
		}
		v := br.GetFieldViolations()[0]
		return &raincheck.ValidationError{Field: v.GetField(), Message: v.GetDescription()}
	}
	return nil
}

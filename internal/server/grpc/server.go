// Package grpc exposes the RainyDay services over gRPC. Requests to RainCheck
// and image methods must carry an access token in the access_token metadata
// key; the owner id it was issued for scopes every call.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/rainyday/internal/logging"
	pb "github.com/dmitrijs2005/rainyday/internal/proto"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
	"github.com/dmitrijs2005/rainyday/internal/server/models"
	"github.com/dmitrijs2005/rainyday/internal/server/services"
	"google.golang.org/grpc"
)

// Users is the account side of the API.
type Users interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// RainChecks is the owner-scoped record API.
type RainChecks interface {
	Create(ctx context.Context, ownerID string, d raincheck.Draft) (*raincheck.RainCheck, error)
	Update(ctx context.Context, ownerID, id string, revision int64, d raincheck.Draft) (*raincheck.RainCheck, error)
	Delete(ctx context.Context, ownerID, id string) error
	Complete(ctx context.Context, ownerID, id string) (*raincheck.RainCheck, error)
	Get(ctx context.Context, ownerID, id string) (*raincheck.RainCheck, error)
	ListPending(ctx context.Context, ownerID string) ([]*raincheck.RainCheck, error)
	ListCompleted(ctx context.Context, ownerID string) ([]*raincheck.RainCheck, error)
}

// Images presigns image transfers.
type Images interface {
	UploadURL(ctx context.Context, ownerID, contentType string) (key, url string, err error)
	DownloadURL(ctx context.Context, ownerID, key string) (string, error)
}

// TokenVerifier resolves an access token to the user id it was issued for.
type TokenVerifier interface {
	UserID(token string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedRainyDayServer

	address      string
	users        Users
	rainchecks   RainChecks
	images       Images
	tokens       TokenVerifier
	logger       logging.Logger
	interceptors []grpc.UnaryServerInterceptor
}

func NewGRPCServer(address string, l logging.Logger, us Users, rs RainChecks, is Images, tv TokenVerifier,
	interceptors ...grpc.UnaryServerInterceptor) *GRPCServer {
	return &GRPCServer{
		address:      address,
		logger:       l.With("module", "grpc_server"),
		users:        us,
		rainchecks:   rs,
		images:       is,
		tokens:       tv,
		interceptors: interceptors,
	}
}

// newServer builds the grpc.Server with the extra interceptors running
// before authentication.
func (s *GRPCServer) newServer() *grpc.Server {
	chain := append(append([]grpc.UnaryServerInterceptor{}, s.interceptors...), s.accessTokenInterceptor)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(chain...))
	pb.RegisterRainyDayServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}

package grpc

import (
	"context"
	"strings"

	pb "github.com/dmitrijs2005/rainyday/internal/proto"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
	"github.com/dmitrijs2005/rainyday/internal/server/services"
	"github.com/dmitrijs2005/rainyday/internal/wire"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// fail converts err into a status, logging anything that is not the
// caller's fault.
func (s *GRPCServer) fail(ctx context.Context, method string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
	}
	return st
}

func sessionOf(p *services.TokenPair) *pb.Session {
	return wire.SessionToProto(wire.Session{
		UserID:       p.UserID,
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
	})
}

func credentials(email, password string) error {
	if email == "" || password == "" {
		return invalidArgument("email and password are required")
	}
	return nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{}, nil
}

// Register creates the account and signs it in right away.
func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.Session, error) {
	if err := credentials(req.GetEmail(), req.GetPassword()); err != nil {
		return nil, err
	}

	u, err := s.users.Register(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, pb.RainyDay_Register_FullMethodName, err)
	}
	s.logger.Info(ctx, "Registered", "user", u.ID)

	pair, err := s.users.Login(ctx, u.Email, req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, pb.RainyDay_Register_FullMethodName, err)
	}
	return sessionOf(pair), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.Session, error) {
	if err := credentials(req.GetEmail(), req.GetPassword()); err != nil {
		return nil, err
	}

	pair, err := s.users.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, pb.RainyDay_Login_FullMethodName, err)
	}
	return sessionOf(pair), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.Session, error) {
	if req.GetRefreshToken() == "" {
		return nil, invalidArgument("refresh token is required")
	}

	pair, err := s.users.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.fail(ctx, pb.RainyDay_RefreshToken_FullMethodName, err)
	}
	return sessionOf(pair), nil
}

func (s *GRPCServer) CreateRainCheck(ctx context.Context, req *pb.CreateRainCheckRequest) (*pb.RainCheck, error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}
	d, err := wire.DraftFromProto(req.GetDraft())
	if err != nil {
		return nil, toStatus(err)
	}

	rc, err := s.rainchecks.Create(ctx, owner, d)
	if err != nil {
		return nil, s.fail(ctx, pb.RainyDay_CreateRainCheck_FullMethodName, err)
	}
	return wire.RainCheckToProto(rc), nil
}

func (s *GRPCServer) UpdateRainCheck(ctx context.Context, req *pb.UpdateRainCheckRequest) (*pb.RainCheck, error) {
	owner, id, err := recordID(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	if req.GetRevision() < 0 {
		return nil, invalidArgument("revision must not be negative")
	}
	d, err := wire.DraftFromProto(req.GetDraft())
	if err != nil {
		return nil, toStatus(err)
	}

	rc, err := s.rainchecks.Update(ctx, owner, id, req.GetRevision(), d)
	if err != nil {
		return nil, s.fail(ctx, pb.RainyDay_UpdateRainCheck_FullMethodName, err)
	}
	return wire.RainCheckToProto(rc), nil
}

// recordID reads the owner and a non-empty record id.
func recordID(ctx context.Context, raw string) (owner, id string, err error) {
	owner, err = ownerID(ctx)
	if err != nil {
		return "", "", err
	}
	id = strings.TrimSpace(raw)
	if id == "" {
		return "", "", invalidArgument("id is required")
	}
	return owner, id, nil
}

func (s *GRPCServer) DeleteRainCheck(ctx context.Context, req *pb.RainCheckRequest) (*pb.DeleteRainCheckResponse, error) {
	owner, id, err := recordID(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.rainchecks.Delete(ctx, owner, id); err != nil {
		return nil, s.fail(ctx, pb.RainyDay_DeleteRainCheck_FullMethodName, err)
	}
	return &pb.DeleteRainCheckResponse{}, nil
}

func (s *GRPCServer) CompleteRainCheck(ctx context.Context, req *pb.RainCheckRequest) (*pb.RainCheck, error) {
	owner, id, err := recordID(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	rc, err := s.rainchecks.Complete(ctx, owner, id)
	if err != nil {
		return nil, s.fail(ctx, pb.RainyDay_CompleteRainCheck_FullMethodName, err)
	}
	return wire.RainCheckToProto(rc), nil
}

func (s *GRPCServer) GetRainCheck(ctx context.Context, req *pb.RainCheckRequest) (*pb.RainCheck, error) {
	owner, id, err := recordID(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	rc, err := s.rainchecks.Get(ctx, owner, id)
	if err != nil {
		return nil, s.fail(ctx, pb.RainyDay_GetRainCheck_FullMethodName, err)
	}
	return wire.RainCheckToProto(rc), nil
}

// ListRainChecks returns completed records when req.Completed is set and
// pending ones otherwise.
func (s *GRPCServer) ListRainChecks(ctx context.Context, req *pb.ListRainChecksRequest) (*pb.ListRainChecksResponse, error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	var items []*raincheck.RainCheck
	if req.GetCompleted() {
		items, err = s.rainchecks.ListCompleted(ctx, owner)
	} else {
		items, err = s.rainchecks.ListPending(ctx, owner)
	}
	if err != nil {
		return nil, s.fail(ctx, pb.RainyDay_ListRainChecks_FullMethodName, err)
	}
	return wire.ListToProto(items), nil
}

// GetImageUploadURL takes the image content type, which may be empty.
func (s *GRPCServer) GetImageUploadURL(ctx context.Context, req *pb.GetImageUploadURLRequest) (*pb.GetImageUploadURLResponse, error) {
	owner, err := ownerID(ctx)
	if err != nil {
		return nil, err
	}

	key, url, err := s.images.UploadURL(ctx, owner, strings.TrimSpace(req.GetContentType()))
	if err != nil {
		return nil, s.fail(ctx, pb.RainyDay_GetImageUploadURL_FullMethodName, err)
	}
	return wire.ImageUploadToProto(wire.ImageUpload{Key: key, URL: url}), nil
}

func (s *GRPCServer) GetImageURL(ctx context.Context, req *pb.GetImageURLRequest) (*pb.GetImageURLResponse, error) {
	owner, key, err := recordID(ctx, req.GetKey())
	if err != nil {
		return nil, err
	}

	url, err := s.images.DownloadURL(ctx, owner, key)
	if err != nil {
		return nil, s.fail(ctx, pb.RainyDay_GetImageURL_FullMethodName, err)
	}
	return &pb.GetImageURLResponse{Url: url}, nil
}

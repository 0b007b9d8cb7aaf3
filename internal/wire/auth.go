package wire

import (
	"fmt"

	pb "github.com/dmitrijs2005/rainyday/internal/proto"
)

// Session is returned by Register, Login and RefreshToken.
type Session struct {
	UserID       string
	AccessToken  string
	RefreshToken string
}

// ImageUpload is returned by GetImageUploadURL: the object key to store in
// the record and the presigned URL to PUT the bytes to.
type ImageUpload struct {
	Key string
	URL string
}

func SessionToProto(s Session) *pb.Session {
	return &pb.Session{UserId: s.UserID, AccessToken: s.AccessToken, RefreshToken: s.RefreshToken}
}

// SessionFromProto requires every field to be set.
func SessionFromProto(m *pb.Session) (Session, error) {
	s := Session{UserID: m.GetUserId(), AccessToken: m.GetAccessToken(), RefreshToken: m.GetRefreshToken()}
	if s.UserID == "" || s.AccessToken == "" || s.RefreshToken == "" {
		return Session{}, fmt.Errorf("%w: incomplete session", ErrMalformed)
	}
	return s, nil
}

func ImageUploadToProto(u ImageUpload) *pb.GetImageUploadURLResponse {
	return &pb.GetImageUploadURLResponse{Key: u.Key, Url: u.URL}
}

func ImageUploadFromProto(m *pb.GetImageUploadURLResponse) (ImageUpload, error) {
	u := ImageUpload{Key: m.GetKey(), URL: m.GetUrl()}
	if u.Key == "" || u.URL == "" {
		return ImageUpload{}, fmt.Errorf("%w: incomplete upload target", ErrMalformed)
	}
	return u, nil
}

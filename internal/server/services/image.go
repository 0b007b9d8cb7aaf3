package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/rainyday/internal/common"
	"github.com/dmitrijs2005/rainyday/internal/logging"
	"github.com/dmitrijs2005/rainyday/internal/server/config"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ImageService hands out presigned S3 URLs for RainCheck images. Objects
// live under a per-owner prefix and an owner can only read its own keys.
type ImageService struct {
	accessKey string
	secretKey string
	region    string
	endpoint  string
	bucket    string
	ttl       time.Duration

	logger logging.Logger
	now    func() time.Time
	newKey func() string
}

func NewImageService(cfg *config.Config, logger logging.Logger) *ImageService {
	return &ImageService{
		accessKey: cfg.S3AccessKey,
		secretKey: cfg.S3SecretKey,
		region:    cfg.S3Region,
		endpoint:  cfg.S3Endpoint,
		bucket:    cfg.S3Bucket,
		ttl:       cfg.PresignTTL,
		logger:    logger.With("module", "images"),
		now:       time.Now,
		newKey:    func() string { return uuid.NewString() },
	}
}

func ownerPrefix(ownerID string) string {
	return common.ImageKeyPrefix + "/" + ownerID + "/"
}

// StorageKey returns a fresh object key for ownerID, bucketed by day.
func (s *ImageService) StorageKey(ownerID string) string {
	d := s.now().UTC()
	return fmt.Sprintf("%s%04d/%02d/%02d/%s", ownerPrefix(ownerID), d.Year(), d.Month(), d.Day(), s.newKey())
}

// OwnsKey reports whether key lies under ownerID's prefix.
func OwnsKey(ownerID, key string) bool {
	if ownerID == "" || path.Clean(key) != key {
		return false
	}
	return strings.HasPrefix(key, ownerPrefix(ownerID))
}

func (s *ImageService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.accessKey, s.secretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.endpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// UploadURL allocates a key for ownerID and presigns a PUT for it.
func (s *ImageService) UploadURL(ctx context.Context, ownerID, contentType string) (key, url string, err error) {
	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", fmt.Errorf("s3 client: %w", err)
	}

	key = s.StorageKey(ownerID)
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	req, err := presignPutObject(pc, ctx, in, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", "", fmt.Errorf("presign put: %w", err)
	}

	s.logger.Debug(ctx, "image upload presigned", "owner", ownerID, "key", key)
	return key, req.URL, nil
}

// DownloadURL presigns a GET for key. Keys outside ownerID's prefix yield
// common.ErrorNotFound.
func (s *ImageService) DownloadURL(ctx context.Context, ownerID, key string) (string, error) {
	if !OwnsKey(ownerID, key) {
		return "", common.ErrorNotFound
	}

	pc, err := s.getPresignClient(ctx)
	if err != nil {
		return "", fmt.Errorf("s3 client: %w", err)
	}

	req, err := presignGetObject(pc, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return req.URL, nil
}

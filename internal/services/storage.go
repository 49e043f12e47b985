package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "ticket-commerce-platform/internal/config"
)

// StorageService defines the interface for product image storage
type StorageService interface {
	// Upload stores a file and returns its public URL
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) (string, error)

	// Delete removes a file from storage
	Delete(ctx context.Context, key string) error

	// GetURL returns the public URL for a stored file
	GetURL(key string) string
}

// ObjectKey builds a collision-free storage key for an uploaded file,
// keeping the original extension.
func ObjectKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
}

// R2Service implements StorageService for Cloudflare R2 (S3-compatible)
type R2Service struct {
	client *s3.Client
	config appconfig.StorageConfig
}

// NewR2Service creates a new R2 storage service
func NewR2Service(cfg appconfig.StorageConfig) (*R2Service, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("storage credentials not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		} else {
			o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
		}
		o.UsePathStyle = true
	})

	return &R2Service{
		client: client,
		config: cfg,
	}, nil
}

// Upload uploads a file to R2 and returns the public URL
func (r *R2Service) Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) (string, error) {
	key = strings.TrimPrefix(key, "/")

	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.config.BucketName),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("public, max-age=31536000"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to storage: %w", err)
	}

	return r.GetURL(key), nil
}

// Delete removes a file from R2
func (r *R2Service) Delete(ctx context.Context, key string) error {
	key = strings.TrimPrefix(key, "/")

	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from storage: %w", err)
	}

	return nil
}

// GetURL returns the public URL for a stored file
func (r *R2Service) GetURL(key string) string {
	key = strings.TrimPrefix(key, "/")

	if r.config.PublicURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(r.config.PublicURL, "/"), key)
	}

	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com/%s/%s", r.config.AccountID, r.config.BucketName, key)
}

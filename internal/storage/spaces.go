package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// SpacesStore implements PhotoStore for DigitalOcean Spaces.
// Spaces is S3-compatible, so we use the AWS SDK.
type SpacesStore struct {
	uploader *s3manager.Uploader
	bucket   string
	region   string
}

// NewSpacesStore creates a new Spaces storage instance.
func NewSpacesStore(cfg Config) (*SpacesStore, error) {
	if cfg.Region == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("region and bucket are required for Spaces storage")
	}

	awsConfig := &aws.Config{
		Region:      aws.String(cfg.Region),
		Endpoint:    aws.String(fmt.Sprintf("https://%s.digitaloceanspaces.com", cfg.Region)),
		Credentials: credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spaces session: %w", err)
	}

	return &SpacesStore{
		uploader: s3manager.NewUploader(sess),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
	}, nil
}

// Save uploads the photo with public-read ACL and returns its public URL.
func (s *SpacesStore) Save(ctx context.Context, key string, data []byte, contentType string) (PhotoRef, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return NoPhoto(), fmt.Errorf("failed to upload photo to Spaces: %w", err)
	}

	url := fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, key)
	return ExternalPhoto(url), nil
}

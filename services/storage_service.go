package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"
)

// StorageService uploads workout videos to S3 and hands back a public URL.
type StorageService struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
}

func NewStorageService(ctx context.Context, region, bucket, publicBaseURL string) (*StorageService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &StorageService{
		client:        s3.NewFromConfig(cfg),
		bucket:        bucket,
		region:        region,
		publicBaseURL: publicBaseURL,
	}, nil
}

// UploadVideo stores data under a collision-resistant key and returns the
// public URL. contentType may be empty; the payload is sniffed then.
func (s *StorageService) UploadVideo(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = mimetype.Detect(data).String()
	}

	key := fmt.Sprintf("videos/%s_%s", randomHex(16), filepath.Base(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", Wrap(KindUpstream, "Upload failed", err)
	}

	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand failing means the process is unusable
	}
	return hex.EncodeToString(b)
}

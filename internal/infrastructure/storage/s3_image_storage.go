package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/anshpaul/paymentApp-backend/internal/usecase/interfaces"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultImagesBucket = "campaign-images"

// S3ImageStorage stores campaign images in S3 and serves them via the
// bucket's public URL.
type S3ImageStorage struct {
	client *s3.Client
	bucket string
	region string
}

var _ interfaces.IImageStorage = (*S3ImageStorage)(nil)

func NewS3ImageStorage(ctx context.Context) (*S3ImageStorage, error) {
	region := getenvDefault("AWS_REGION", "ap-south-1")

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3ImageStorage{
		client: s3.NewFromConfig(cfg),
		bucket: getenvDefault("CAMPAIGN_IMAGES_BUCKET", defaultImagesBucket),
		region: region,
	}, nil
}

func (s *S3ImageStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[upload][storage] s3 put failed key=%s err=%v", key, err)
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	log.Printf("[upload][storage] s3 put success key=%s", key)
	return url, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/RichDInfGrp/FimiliarVis/internal/render"
)

// S3Config holds S3/MinIO publish configuration
type S3Config struct {
	Endpoint        string // e.g., "http://localhost:9000" for MinIO
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	Region          string
	KeyPrefix       string // object key prefix, e.g. "data"
}

// S3Publisher uploads rendered documents to S3-compatible storage so the
// static dashboard can be hosted straight from a bucket.
type S3Publisher struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
	log       *slog.Logger
}

// NewS3Publisher creates a new S3 publisher
func NewS3Publisher(cfg S3Config, log *slog.Logger) (*S3Publisher, error) {
	// Create S3 client with static credentials and custom endpoint
	client := s3.New(s3.Options{
		Region:       cfg.Region,
		BaseEndpoint: aws.String(cfg.Endpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		UsePathStyle: true, // Required for MinIO
	})

	return &S3Publisher{
		client:    client,
		bucket:    cfg.Bucket,
		keyPrefix: cfg.KeyPrefix,
		log:       log,
	}, nil
}

// Publish uploads every document of the set under deterministic keys
// (<prefix>/<name>.json), overwriting previous builds.
func (p *S3Publisher) Publish(ctx context.Context, set *render.Set) error {
	for _, name := range render.Names {
		body, ok := set.Get(name)
		if !ok {
			return fmt.Errorf("document %q missing from render set", name)
		}
		key := path.Join(p.keyPrefix, name+".json")

		_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(p.bucket),
			Key:           aws.String(key),
			Body:          bytes.NewReader(body),
			ContentType:   aws.String("application/json; charset=utf-8"),
			ContentLength: aws.Int64(int64(len(body))),
		})
		if err != nil {
			return fmt.Errorf("uploading %s to s3: %w", key, err)
		}
		p.log.Info("published document", "bucket", p.bucket, "key", key, "bytes", len(body))
	}
	return nil
}

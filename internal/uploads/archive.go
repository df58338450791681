package uploads

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"easyhire-backend/internal/shared/telemetry"
)

// Archiver mirrors stored uploads to a secondary location. Archive failures
// never fail an upload.
type Archiver interface {
	Archive(ctx context.Context, name, path string)
}

// S3Archiver copies stored résumés to an S3 bucket.
type S3Archiver struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Archiver builds an S3-backed archiver.
func NewS3Archiver(ctx context.Context, region, bucket, prefix string) (*S3Archiver, error) {
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Archiver{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: strings.Trim(strings.TrimSpace(prefix), "/"),
	}, nil
}

// Archive uploads the stored file to S3 under its generated name. Errors are
// logged and swallowed.
func (a *S3Archiver) Archive(ctx context.Context, name, path string) {
	f, err := os.Open(path)
	if err != nil {
		telemetry.Error("archive.open_failed", map[string]any{"file": name, "err": err.Error()})
		return
	}
	defer f.Close()

	key := name
	if a.prefix != "" {
		key = a.prefix + "/" + name
	}

	if _, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   f,
	}); err != nil {
		telemetry.Error("archive.put_failed", map[string]any{
			"file":   name,
			"bucket": a.bucket,
			"key":    key,
			"err":    err.Error(),
		})
		return
	}

	telemetry.Info("archive.stored", map[string]any{"file": name, "bucket": a.bucket, "key": key})
}

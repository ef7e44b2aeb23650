// Package storage stores uploaded documents in S3.
package storage

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

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/config"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader writes objects under the configured base directory and returns
// their public virtual-hosted URL.
type S3Uploader struct {
	client  objectPutter
	bucket  string
	region  string
	baseDir string
}

// NewS3Uploader builds an S3 client from static credentials when they are
// configured and from the default AWS chain otherwise.
func NewS3Uploader(ctx context.Context, cfg config.StorageConfig) (*S3Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return newS3Uploader(s3.NewFromConfig(awsCfg), cfg), nil
}

func newS3Uploader(client objectPutter, cfg config.StorageConfig) *S3Uploader {
	return &S3Uploader{
		client:  client,
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		baseDir: cfg.BaseDir,
	}
}

// ObjectKey returns {base}/{owner}/{lower(category)}/{filename} with stray
// slashes trimmed from every segment.
func (u *S3Uploader) ObjectKey(owner, category, filename string) string {
	clean := func(s string) string { return strings.Trim(strings.TrimSpace(s), "/") }
	return path.Join(clean(u.baseDir), clean(owner), strings.ToLower(clean(category)), clean(filename))
}

func (u *S3Uploader) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}

// Put uploads body under key and returns the object URL.
func (u *S3Uploader) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return u.URL(key), nil
}

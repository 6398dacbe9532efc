// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

package blob

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store implements [Store] against any S3-compatible endpoint.
type S3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// S3Options carries the connection settings for an S3-compatible backend.
type S3Options struct {
	Bucket        string
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// NewS3Store builds an S3 client pointed at a custom endpoint.
//
// # Parameters
//   - context: Context for SDK configuration loading.
//   - options: Endpoint, bucket, and credential settings.
//   - logger: Structured logger for startup events.
func NewS3Store(context context.Context, options S3Options, logger *slog.Logger) (*S3Store, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{URL: options.Endpoint}, nil
	})

	cfg, err := awsconfig.LoadDefaultConfig(context,
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(options.AccessKey, options.SecretKey, "")),
		awsconfig.WithRegion(options.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("blob: failed to load S3 config: %w", err)
	}

	logger.Info("blob store configured",
		slog.String("bucket", options.Bucket),
		slog.String("endpoint", options.Endpoint),
	)

	return &S3Store{
		client:        s3.NewFromConfig(cfg),
		bucket:        options.Bucket,
		publicBaseURL: strings.TrimSuffix(options.PublicBaseURL, "/"),
	}, nil
}

// Upload writes the object with public-read access.
func (store *S3Store) Upload(context context.Context, key string, contentType string, body io.Reader) error {
	_, err := store.client.PutObject(context, &s3.PutObjectInput{
		Bucket:      aws.String(store.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         "public-read",
	})
	if err != nil {
		return fmt.Errorf("blob: upload of %q failed: %w", key, err)
	}
	return nil
}

// PublicURL joins the configured public base URL with the object key.
func (store *S3Store) PublicURL(key string) string {
	return store.publicBaseURL + "/" + key
}

package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3 client and bucket info
type S3Config struct {
	Client     *s3.Client
	BucketName string
	Key        string
}

// NewS3Config builds an S3 client for the reference dataset object using the
// default AWS credential chain. A custom endpoint switches to path-style
// addressing for S3-compatible stores.
func NewS3Config(ctx context.Context, rc ReferenceCatalogConfig) (*S3Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if rc.Region != "" {
		opts = append(opts, awsconfig.WithRegion(rc.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if rc.Endpoint != "" {
			o.BaseEndpoint = aws.String(rc.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Config{
		Client:     client,
		BucketName: rc.Bucket,
		Key:        rc.Key,
	}, nil
}

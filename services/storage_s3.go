package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog/log"
)

// ObjectPutter is the subset of the S3 client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Storer uploads to a bucket and returns the object's public URL.
type S3Storer struct {
	client  ObjectPutter
	bucket  string
	baseURL string
}

func NewS3Storer(cfg config.StorageConfig, awsCfg aws.Config) *S3Storer {
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.Region != "" {
			o.Region = cfg.Region
		}
		o.UsePathStyle = cfg.UsePathStyle
	})
	return NewS3StorerWithClient(client, cfg)
}

func NewS3StorerWithClient(client ObjectPutter, cfg config.StorageConfig) *S3Storer {
	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return &S3Storer{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *S3Storer) Store(ctx context.Context, r io.Reader, originalFilename, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errs.NewUploadFailedError(uploadError("read upload", err))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := StoredFilename(originalFilename)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", errs.NewUploadFailedError(err)
	}

	log.Debug().Str("bucket", s.bucket).Str("key", key).Msg("stored upload in S3")
	return s.baseURL + "/" + key, nil
}

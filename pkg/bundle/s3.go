package bundle

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Config describes an S3-compatible bucket holding bundle objects.
// Endpoint and PathStyle cover non-AWS providers (MinIO, R2, Spaces).
type S3Config struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PathStyle bool
}

func (c S3Config) validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}
	if c.Region == "" && c.Endpoint == "" {
		return fmt.Errorf("%w: region or endpoint is required", ErrInvalidConfig)
	}
	return nil
}

// S3Loader fetches bundle objects from an S3-compatible bucket. Object
// keys come from the path template, {{locale}}/{{namespace}}.json by
// default.
type S3Loader struct {
	client   *s3.Client
	bucket   string
	template Template
}

// S3Option configures an S3Loader.
type S3Option func(*S3Loader)

// WithS3Template replaces the default object key template.
func WithS3Template(t Template) S3Option {
	return func(l *S3Loader) {
		if t != "" {
			l.template = t
		}
	}
}

// NewS3 creates a loader reading bundle objects through an existing
// client.
func NewS3(client *s3.Client, bucket string, opts ...S3Option) (*S3Loader, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: client is required", ErrInvalidConfig)
	}
	if bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}

	l := &S3Loader{
		client:   client,
		bucket:   bucket,
		template: DefaultTemplate,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// NewS3FromConfig builds the client from static credentials and creates
// the loader.
func NewS3FromConfig(cfg S3Config, opts ...S3Option) (*S3Loader, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	clientOpts := []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = cfg.Region
			o.Credentials = credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)
		},
	}

	if cfg.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		})
	}

	return NewS3(s3.New(s3.Options{}, clientOpts...), cfg.Bucket, opts...)
}

// Load fetches and decodes the bundle object for (locale, namespace). A
// missing object is a plain miss and yields an empty bundle; any other
// failure returns an error.
func (l *S3Loader) Load(ctx context.Context, locale, namespace string) (map[string]any, error) {
	key := l.template.Expand(locale, namespace)

	output, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("%w: s3 object %q: %w", ErrLoadFailed, key, err)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(io.LimitReader(output.Body, maxBundleSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading s3 object %q: %w", ErrLoadFailed, key, err)
	}

	return decodeTree(key, data)
}

// isNoSuchKey recognizes missing-object errors by API error code and by
// typed error, since S3-compatible providers differ in which they return.
func isNoSuchKey(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}

	var notFound *types.NoSuchKey
	return errors.As(err, &notFound)
}

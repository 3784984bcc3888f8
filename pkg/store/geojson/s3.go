package geojson

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the slice of the S3 client the loader needs.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Loader reads the boundary dataset from an S3 object. Used when the
// service runs without the dataset baked into its image.
type S3Loader struct {
	client S3API
	bucket string
	key    string
}

func NewS3Loader(client S3API, bucket, key string) S3Loader {
	return S3Loader{client: client, bucket: bucket, key: key}
}

// NewS3LoaderFromEnv builds a loader with the default AWS credential chain.
func NewS3LoaderFromEnv(ctx context.Context, bucket, key string) (S3Loader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return S3Loader{}, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3Loader(s3.NewFromConfig(cfg), bucket, key), nil
}

func (l S3Loader) Load(ctx context.Context) (*FeatureCollection, error) {
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &l.bucket,
		Key:    &l.key,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get s3://%s/%s: %v", ErrBoundaryUnavailable, l.bucket, l.key, err)
	}
	defer out.Body.Close()

	fc, err := Parse(out.Body)
	if err != nil {
		return nil, fmt.Errorf("parse s3://%s/%s: %w", l.bucket, l.key, err)
	}
	return fc, nil
}

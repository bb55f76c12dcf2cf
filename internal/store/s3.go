package store

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/KOFI-GYIMAH/uc-orb/internal/models"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/errors"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
)

// s3API is the subset of the S3 client the store needs.
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

var _ models.Source = (*S3Store)(nil)

// S3Store reads the catalog document from an S3 object on every load.
// Objects with a .gz suffix are decompressed on the fly.
type S3Store struct {
	client s3API
	bucket string
	key    string
}

func NewS3Store(client s3API, bucket, key string) *S3Store {
	return &S3Store{client: client, bucket: bucket, key: key}
}

// NewS3StoreFromURI builds a store for s3://bucket/key using the default AWS
// credential chain.
func NewS3StoreFromURI(ctx context.Context, uri string) (*S3Store, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.DataUnavailable("Could not load AWS configuration", err)
	}

	return NewS3Store(s3.NewFromConfig(cfg), bucket, key), nil
}

func ParseS3URI(uri string) (bucket, key string, err error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "s3" {
		return "", "", fmt.Errorf("data source %q is not an s3:// URI", uri)
	}

	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("data source should be in format s3://bucket/key")
	}
	return u.Host, key, nil
}

func (s *S3Store) LoadRepositories(ctx context.Context) ([]models.Repository, error) {
	origin := fmt.Sprintf("s3://%s/%s", s.bucket, s.key)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, errors.DataUnavailable(
			fmt.Sprintf("Could not fetch repository data from %s", origin),
			err,
		)
	}
	defer out.Body.Close()

	var body io.Reader = out.Body
	if strings.HasSuffix(s.key, ".gz") {
		gz, err := gzip.NewReader(out.Body)
		if err != nil {
			return nil, errors.DataUnavailable(
				fmt.Sprintf("Could not decompress %s", origin),
				err,
			)
		}
		defer gz.Close()
		body = gz
	}

	repos, err := decodeRepositories(body, origin)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded %d repositories from %s", len(repos), origin)
	return repos, nil
}

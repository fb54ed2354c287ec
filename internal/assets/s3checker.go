package assets

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// S3Checker probes an S3-compatible bucket directly, skipping the public CDN.
// Used when the asset host fronts a bucket we hold read credentials for.
type S3Checker struct {
	api    s3iface.S3API
	bucket string
	prefix string
}

// S3Config carries the bucket coordinates. Endpoint is set when the bucket
// lives on an S3-compatible service rather than AWS proper.
type S3Config struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

func NewS3Checker(cfg S3Config) (*S3Checker, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, err
	}
	return &S3Checker{api: s3.New(sess), bucket: cfg.Bucket, prefix: strings.Trim(cfg.Prefix, "/")}, nil
}

// Exists issues HeadObject. A NotFound code is a miss, everything else is an
// error.
func (c *S3Checker) Exists(ctx context.Context, key string) (bool, error) {
	fullKey := strings.TrimLeft(key, "/")
	if c.prefix != "" {
		fullKey = c.prefix + "/" + fullKey
	}

	_, err := c.api.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(fullKey),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			switch aerr.Code() {
			case s3.ErrCodeNoSuchKey, "NotFound":
				return false, nil
			}
		}
		return false, err
	}
	return true, nil
}

package assets

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type fakeS3 struct {
	s3iface.S3API
	keys map[string]bool
	err  error
}

func (f *fakeS3) HeadObjectWithContext(_ aws.Context, in *s3.HeadObjectInput, _ ...request.Option) (*s3.HeadObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.keys[aws.StringValue(in.Key)] {
		return &s3.HeadObjectOutput{}, nil
	}
	return nil, awserr.New("NotFound", "no such object", nil)
}

func TestS3CheckerExists(t *testing.T) {
	chk := &S3Checker{
		api:    &fakeS3{keys: map[string]bool{"uploads/rooms/1.jpg": true}},
		bucket: "assets",
		prefix: "uploads",
	}

	ok, err := chk.Exists(context.Background(), "rooms/1.jpg")
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}

	ok, err = chk.Exists(context.Background(), "rooms/2.jpg")
	if err != nil {
		t.Fatalf("NotFound must be a miss, not an error: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}
}

func TestS3CheckerOtherErrorsSurface(t *testing.T) {
	chk := &S3Checker{
		api:    &fakeS3{err: awserr.New("AccessDenied", "denied", nil)},
		bucket: "assets",
	}
	if _, err := chk.Exists(context.Background(), "rooms/1.jpg"); err == nil {
		t.Fatal("expected the access error to surface")
	}
}

package s3

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"passaro-ok/internal/ports/blob"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestNew_RequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatalf("expected error without bucket")
	}
}

func TestNew_StaticCredentialsAndEndpoint(t *testing.T) {
	s, err := New(context.Background(), Config{
		Bucket:          "photos",
		Endpoint:        "http://localhost:9000",
		PathStyle:       true,
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if s.Driver() != blob.DriverS3 || s.bucket != "photos" {
		t.Fatalf("unexpected store: %+v", s)
	}
	o := s.client.Options()
	if !o.UsePathStyle || o.BaseEndpoint == nil || *o.BaseEndpoint != "http://localhost:9000" {
		t.Fatalf("endpoint options not applied: %+v", o)
	}
}

func TestMapErr(t *testing.T) {
	if !errors.Is(mapErr(fmt.Errorf("get: %w", &types.NoSuchKey{})), blob.ErrNotFound) {
		t.Fatalf("NoSuchKey should map to ErrNotFound")
	}
	if !errors.Is(mapErr(&types.NotFound{}), blob.ErrNotFound) {
		t.Fatalf("NotFound should map to ErrNotFound")
	}
	other := errors.New("boom")
	if mapErr(other) != other {
		t.Fatalf("other errors pass through")
	}
}

package storage

import "testing"

func TestNewS3StoreRequiresBucket(t *testing.T) {
	if _, err := NewS3Store(S3Config{Region: "us-east-1"}); err == nil {
		t.Fatalf("expected error without bucket")
	}
}

func TestNewS3StoreWithEndpoint(t *testing.T) {
	store, err := NewS3Store(S3Config{
		Bucket:          "reports",
		Region:          "us-east-1",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.bucket != "reports" {
		t.Fatalf("unexpected bucket %s", store.bucket)
	}
	if !store.client.Options().UsePathStyle {
		t.Fatalf("custom endpoint must use path-style addressing")
	}
}

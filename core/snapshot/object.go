package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"team-inventory/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore persists snapshots as JSON objects in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectStore creates an ObjectStore writing to bucket under prefix.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, prefix: prefix}
}

func (s *ObjectStore) Name() string { return BackendStorage }

// EnsureBucket creates the bucket if it does not exist yet.
func (s *ObjectStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
	}
	return nil
}

// BucketExists reports whether the configured bucket is present.
func (s *ObjectStore) BucketExists(ctx context.Context) (bool, error) {
	return s.client.BucketExists(ctx, s.bucket)
}

func (s *ObjectStore) Load(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName(key), minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to get object %s: %w", s.objectName(key), err)
	}
	defer obj.Close()

	// minio defers the request until the first read
	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to read object %s: %w", s.objectName(key), err)
	}
	return data, nil
}

func (s *ObjectStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.objectName(key), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", s.objectName(key), err)
	}
	return nil
}

func (s *ObjectStore) objectName(key string) string {
	return path.Join(s.prefix, key+".json")
}

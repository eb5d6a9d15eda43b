package storage_test

import (
	"errors"
	"testing"

	"team-inventory/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "team-inventory",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestIsNotExist(t *testing.T) {
	assert.False(t, storage.IsNotExist(nil))
	assert.False(t, storage.IsNotExist(errors.New("boom")))
	assert.True(t, storage.IsNotExist(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.True(t, storage.IsNotExist(minio.ErrorResponse{Code: "NoSuchBucket"}))
	assert.False(t, storage.IsNotExist(minio.ErrorResponse{Code: "AccessDenied"}))
}

// Package storage wraps the MinIO client used by the object storage snapshot
// backend. It works against AWS S3 and self-hosted MinIO alike.
//
// The Client interface only exposes the calls the service makes, which keeps
// it easy to mock (see core/storage/mocks).
package storage

// Package storage defines the object-store port used by the file service.
//
// It is implemented by minio.Store against a MinIO/S3 backend and by
// memory.Store for tests. All operations are blocking and single-attempt:
// no retry is performed here, callers own retry policy.
package storage

import (
	"context"
	"time"
)

// Provider is the object-store capability interface.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Upload writes data under objectKey in bucket with the given content type.
	Upload(ctx context.Context, bucket, objectKey string, data []byte, size int64, contentType string) error

	// Download returns the full payload stored under objectKey.
	Download(ctx context.Context, bucket, objectKey string) ([]byte, error)

	// Delete removes the object stored under objectKey.
	Delete(ctx context.Context, bucket, objectKey string) error

	// Exists reports whether an object is stored under objectKey.
	Exists(ctx context.Context, bucket, objectKey string) (bool, error)

	// EnsureBucket validates the bucket name against the S3 naming rules and
	// creates the bucket when absent. Idempotent.
	EnsureBucket(ctx context.Context, bucket string) error

	// PresignedGetURL returns a time-limited URL allowing direct retrieval
	// of the object without credentials.
	PresignedGetURL(ctx context.Context, bucket, objectKey string, expiry time.Duration) (string, error)
}

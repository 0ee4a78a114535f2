// Package memory provides an in-process implementation of the
// storage.Provider interface, used by service tests and local development.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/internal/storage"
)

// Store implements storage.Provider with plain maps. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	buckets map[string]map[string]object
}

type object struct {
	data        []byte
	contentType string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{buckets: make(map[string]map[string]object)}
}

// Upload writes data under objectKey in bucket. The bucket must exist.
func (s *Store) Upload(
	_ context.Context,
	bucket, objectKey string,
	data []byte,
	_ int64,
	contentType string,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[bucket]
	if !ok {
		return errx.New("bucket does not exist",
			errx.WithCode(storage.CodeStorageFault),
			errx.WithType(errx.T_Internal),
			errx.WithDetails(errx.D{"bucket": bucket}),
		)
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	b[objectKey] = object{data: cp, contentType: contentType}
	return nil
}

// Download returns the payload stored under objectKey.
func (s *Store) Download(_ context.Context, bucket, objectKey string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.buckets[bucket][objectKey]
	if !ok {
		return nil, notFound(bucket, objectKey)
	}

	cp := make([]byte, len(obj.data))
	copy(cp, obj.data)
	return cp, nil
}

// Delete removes the object stored under objectKey. Deleting a missing
// object is not an error, matching S3 semantics.
func (s *Store) Delete(_ context.Context, bucket, objectKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.buckets[bucket], objectKey)
	return nil
}

// Exists reports whether an object is stored under objectKey.
func (s *Store) Exists(_ context.Context, bucket, objectKey string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.buckets[bucket][objectKey]
	return ok, nil
}

// EnsureBucket validates the bucket name and creates the bucket when absent.
func (s *Store) EnsureBucket(_ context.Context, bucket string) error {
	res := domain.ValidateBucketName(bucket)
	if !res.Valid {
		return errx.New(res.Message,
			errx.WithCode(domain.CodeInvalidBucketName),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"bucket_name": bucket}),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buckets[res.NormalizedName]; !ok {
		s.buckets[res.NormalizedName] = make(map[string]object)
	}
	return nil
}

// PresignedGetURL returns a synthetic URL for the object.
func (s *Store) PresignedGetURL(
	_ context.Context,
	bucket, objectKey string,
	expiry time.Duration,
) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.buckets[bucket][objectKey]; !ok {
		return "", notFound(bucket, objectKey)
	}
	return fmt.Sprintf("memory://%s/%s?expires=%d", bucket, objectKey, int(expiry.Seconds())), nil
}

// ContentType returns the stored content type of an object. Test helper.
func (s *Store) ContentType(bucket, objectKey string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.buckets[bucket][objectKey]
	return obj.contentType, ok
}

// ObjectCount returns the number of stored objects across buckets. Test helper.
func (s *Store) ObjectCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}

func notFound(bucket, objectKey string) error {
	return errx.New("object not found",
		errx.WithCode(storage.CodeObjectNotFound),
		errx.WithType(errx.T_NotFound),
		errx.WithDetails(errx.D{"bucket": bucket, "object_key": objectKey}),
	)
}

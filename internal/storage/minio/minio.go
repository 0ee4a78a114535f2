// Package minio provides the MinIO implementation of the storage.Provider
// interface.
package minio

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/code19m/errx"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/internal/storage"
)

const codeNoSuchKey = "NoSuchKey"

// Store implements storage.Provider using a MinIO client.
type Store struct {
	client *minio.Client
}

// New creates a new MinIO store from the configuration.
func New(cfg Config) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &Store{client: client}, nil
}

// Upload writes data under objectKey in bucket.
func (s *Store) Upload(
	ctx context.Context,
	bucket, objectKey string,
	data []byte,
	size int64,
	contentType string,
) error {
	_, err := s.client.PutObject(ctx, bucket, objectKey, bytes.NewReader(data), size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return storageFault(err, bucket, objectKey)
	}
	return nil
}

// Download returns the full payload stored under objectKey.
func (s *Store) Download(ctx context.Context, bucket, objectKey string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, storageFault(err, bucket, objectKey)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, wrapMinioError(err, bucket, objectKey)
	}
	return data, nil
}

// Delete removes the object stored under objectKey.
func (s *Store) Delete(ctx context.Context, bucket, objectKey string) error {
	err := s.client.RemoveObject(ctx, bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return wrapMinioError(err, bucket, objectKey)
	}
	return nil
}

// Exists reports whether an object is stored under objectKey.
func (s *Store) Exists(ctx context.Context, bucket, objectKey string) (bool, error) {
	_, err := s.client.StatObject(ctx, bucket, objectKey, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == codeNoSuchKey || resp.Code == "NotFound" {
			return false, nil
		}
		return false, storageFault(err, bucket, objectKey)
	}
	return true, nil
}

// EnsureBucket validates the bucket name and creates the bucket when absent.
func (s *Store) EnsureBucket(ctx context.Context, bucket string) error {
	res := domain.ValidateBucketName(bucket)
	if !res.Valid {
		return errx.New(res.Message,
			errx.WithCode(domain.CodeInvalidBucketName),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"bucket_name": bucket}),
		)
	}

	name := res.NormalizedName

	exists, err := s.client.BucketExists(ctx, name)
	if err != nil {
		return storageFault(err, name, "")
	}
	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, name, minio.MakeBucketOptions{}); err != nil {
		return storageFault(err, name, "")
	}
	return nil
}

// PresignedGetURL returns a time-limited GET URL for the object.
func (s *Store) PresignedGetURL(
	ctx context.Context,
	bucket, objectKey string,
	expiry time.Duration,
) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, bucket, objectKey, expiry, nil)
	if err != nil {
		return "", storageFault(err, bucket, objectKey)
	}
	return u.String(), nil
}

// wrapMinioError maps a MinIO NoSuchKey response to the not-found code and
// everything else to a storage fault.
func wrapMinioError(err error, bucket, objectKey string) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == codeNoSuchKey {
		return errx.New("object not found",
			errx.WithCode(storage.CodeObjectNotFound),
			errx.WithType(errx.T_NotFound),
			errx.WithDetails(errx.D{"bucket": bucket, "object_key": objectKey}),
		)
	}
	return storageFault(err, bucket, objectKey)
}

func storageFault(err error, bucket, objectKey string) error {
	return errx.Wrap(err,
		errx.WithCode(storage.CodeStorageFault),
		errx.WithType(errx.T_Internal),
		errx.WithDetails(errx.D{"bucket": bucket, "object_key": objectKey}),
	)
}

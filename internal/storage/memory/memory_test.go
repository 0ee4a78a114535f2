package memory_test

import (
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/internal/storage"
	"github.com/rise-and-shine/filevault/internal/storage/memory"
)

func TestStoreLifecycle(t *testing.T) {
	s := memory.New()
	ctx := t.Context()

	require.NoError(t, s.EnsureBucket(ctx, "test-bucket"))

	data := []byte("PDF-America/12")
	key := "2024/09/21/20240921143022-a8b9c1d2/test.pdf"

	require.NoError(t, s.Upload(ctx, "test-bucket", key, data, int64(len(data)), "application/pdf"))
	assert.Equal(t, 1, s.ObjectCount())

	exists, err := s.Exists(ctx, "test-bucket", key)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := s.Download(ctx, "test-bucket", key)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	ct, ok := s.ContentType("test-bucket", key)
	require.True(t, ok)
	assert.Equal(t, "application/pdf", ct)

	require.NoError(t, s.Delete(ctx, "test-bucket", key))
	assert.Zero(t, s.ObjectCount())

	exists, err = s.Exists(ctx, "test-bucket", key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUploadRequiresBucket(t *testing.T) {
	s := memory.New()

	err := s.Upload(t.Context(), "missing", "key", []byte("x"), 1, "text/plain")

	require.Error(t, err)
	assert.Equal(t, storage.CodeStorageFault, errx.AsErrorX(err).Code())
}

func TestDownloadMissingObject(t *testing.T) {
	s := memory.New()
	require.NoError(t, s.EnsureBucket(t.Context(), "test-bucket"))

	_, err := s.Download(t.Context(), "test-bucket", "no/such/key")

	require.Error(t, err)
	e := errx.AsErrorX(err)
	assert.Equal(t, storage.CodeObjectNotFound, e.Code())
	assert.Equal(t, errx.T_NotFound, e.Type())
}

func TestDeleteMissingObjectIsNoop(t *testing.T) {
	s := memory.New()
	require.NoError(t, s.EnsureBucket(t.Context(), "test-bucket"))

	assert.NoError(t, s.Delete(t.Context(), "test-bucket", "no/such/key"))
}

func TestEnsureBucketValidatesName(t *testing.T) {
	s := memory.New()

	err := s.EnsureBucket(t.Context(), "My-Bucket")

	require.Error(t, err)
	e := errx.AsErrorX(err)
	assert.Equal(t, domain.CodeInvalidBucketName, e.Code())
	assert.Equal(t, errx.T_Validation, e.Type())
}

func TestEnsureBucketIsIdempotent(t *testing.T) {
	s := memory.New()
	ctx := t.Context()

	require.NoError(t, s.EnsureBucket(ctx, "test-bucket"))
	require.NoError(t, s.Upload(ctx, "test-bucket", "key", []byte("x"), 1, "text/plain"))

	// re-ensuring must not wipe existing objects
	require.NoError(t, s.EnsureBucket(ctx, "test-bucket"))
	assert.Equal(t, 1, s.ObjectCount())
}

func TestPresignedGetURL(t *testing.T) {
	s := memory.New()
	ctx := t.Context()

	require.NoError(t, s.EnsureBucket(ctx, "test-bucket"))
	require.NoError(t, s.Upload(ctx, "test-bucket", "dir/file.pdf", []byte("x"), 1, "application/pdf"))

	url, err := s.PresignedGetURL(ctx, "test-bucket", "dir/file.pdf", time.Hour)
	require.NoError(t, err)
	assert.Contains(t, url, "test-bucket")
	assert.Contains(t, url, "dir/file.pdf")

	_, err = s.PresignedGetURL(ctx, "test-bucket", "missing", time.Hour)
	require.Error(t, err)
	assert.Equal(t, storage.CodeObjectNotFound, errx.AsErrorX(err).Code())
}

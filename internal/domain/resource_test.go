package domain_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/filevault/internal/domain"
)

func testGenerator() *domain.IDGenerator {
	now := time.Date(2024, time.September, 21, 14, 30, 22, 0, time.Local)
	return domain.NewIDGeneratorWith(
		func() time.Time { return now },
		rand.New(rand.NewSource(7)),
	)
}

func TestEnvelopeOf(t *testing.T) {
	tests := []struct {
		name      string
		encrypted bool
		algorithm string
		wantAlg   string
	}{
		{name: "unencrypted", encrypted: false, algorithm: "", wantAlg: ""},
		{name: "unencrypted clears stray algorithm", encrypted: false, algorithm: "AES-256-CBC", wantAlg: ""},
		{name: "encrypted defaults algorithm", encrypted: true, algorithm: "", wantAlg: domain.DefaultEncryptionAlgorithm},
		{name: "encrypted keeps algorithm", encrypted: true, algorithm: "AES-256-CBC", wantAlg: "AES-256-CBC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := domain.EnvelopeOf(tt.encrypted, tt.algorithm)

			assert.Equal(t, tt.encrypted, e.IsEncrypted())
			assert.Equal(t, tt.wantAlg, e.Algorithm())
		})
	}
}

func TestCreateFileResource(t *testing.T) {
	r, err := domain.CreateFileResource(
		testGenerator(),
		"report.pdf", "application/pdf", 1024,
		"contracts-bucket", domain.SourceTypeIDUpload, false,
	)
	require.NoError(t, err)

	assert.Zero(t, r.ID())
	assert.False(t, r.FileID().IsZero())
	assert.Equal(t, "report.pdf", r.Metadata().FileName())
	assert.Equal(t, "contracts-bucket", r.Location().BucketName())
	assert.Equal(t, domain.SourceTypeIDUpload, r.SourceType())
	assert.False(t, r.RequiresEncryption())

	dir := "2024/09/21/" + r.FileID().String()
	assert.Equal(t, dir, r.Location().Directory())
	assert.Equal(t, dir+"/report.pdf", r.ObjectKey())
	assert.Equal(t, "/contracts-bucket/"+dir+"/report.pdf", r.FileURL())

	require.NoError(t, r.ValidateForUpload())
}

func TestCreateFileResourceEncrypted(t *testing.T) {
	r, err := domain.CreateFileResource(
		testGenerator(),
		"photo.jpg", "image/jpeg", 2048,
		"media", domain.SourceTypeURLUpload, true,
	)
	require.NoError(t, err)

	assert.True(t, r.RequiresEncryption())
	assert.Equal(t, domain.DefaultEncryptionAlgorithm, r.Envelope().Algorithm())
	assert.Equal(t, domain.SourceTypeURLUpload, r.SourceType())
}

func TestCreateFileResourceValidation(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		fileSize int64
		bucket   string
		wantCode string
	}{
		{
			name:     "invalid metadata",
			fileName: "report.pdf",
			fileSize: 0,
			bucket:   "contracts-bucket",
			wantCode: domain.CodeInvalidMetadata,
		},
		{
			name:     "invalid bucket",
			fileName: "report.pdf",
			fileSize: 1,
			bucket:   "My-Bucket",
			wantCode: domain.CodeInvalidBucketName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.CreateFileResource(
				testGenerator(),
				tt.fileName, "application/pdf", tt.fileSize,
				tt.bucket, domain.SourceTypeIDUpload, false,
			)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errx.AsErrorX(err).Code())
		})
	}
}

func TestValidateForUploadRejectsDisallowedExtension(t *testing.T) {
	r, err := domain.CreateFileResource(
		testGenerator(),
		"setup.exe", "application/octet-stream", 1,
		"contracts-bucket", domain.SourceTypeIDUpload, false,
	)
	require.NoError(t, err)

	err = r.ValidateForUpload()

	require.Error(t, err)
	e := errx.AsErrorX(err)
	assert.Equal(t, domain.CodeDisallowedExtension, e.Code())
	assert.Equal(t, errx.T_Validation, e.Type())
}

func TestResourceWithID(t *testing.T) {
	r, err := domain.CreateFileResource(
		testGenerator(),
		"report.pdf", "application/pdf", 1,
		"contracts-bucket", domain.SourceTypeIDUpload, false,
	)
	require.NoError(t, err)

	saved := r.WithID(42)

	assert.Equal(t, int64(42), saved.ID())
	assert.Zero(t, r.ID())
	assert.Equal(t, r.FileID(), saved.FileID())
}

package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/filevault/internal/domain"
)

func TestNewMetadata(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		fileType string
		fileSize int64
		wantErr  bool
	}{
		{
			name:     "valid pdf",
			fileName: "report.pdf",
			fileType: "application/pdf",
			fileSize: 1024,
		},
		{
			name:     "max size",
			fileName: "big.pdf",
			fileType: "application/pdf",
			fileSize: domain.MaxFileSize,
		},
		{
			name:     "240 char name",
			fileName: strings.Repeat("a", 236) + ".pdf",
			fileType: "application/pdf",
			fileSize: 1,
		},
		{
			name:     "blank name",
			fileName: "   ",
			fileType: "application/pdf",
			fileSize: 1,
			wantErr:  true,
		},
		{
			name:     "name too long",
			fileName: strings.Repeat("a", 241),
			fileType: "application/pdf",
			fileSize: 1,
			wantErr:  true,
		},
		{
			name:     "zero size",
			fileName: "empty.pdf",
			fileType: "application/pdf",
			fileSize: 0,
			wantErr:  true,
		},
		{
			name:     "negative size",
			fileName: "neg.pdf",
			fileType: "application/pdf",
			fileSize: -1,
			wantErr:  true,
		},
		{
			name:     "size over limit",
			fileName: "huge.pdf",
			fileType: "application/pdf",
			fileSize: domain.MaxFileSize + 1,
			wantErr:  true,
		},
		{
			name:     "blank type",
			fileName: "report.pdf",
			fileType: " ",
			fileSize: 1,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := domain.NewMetadata(tt.fileName, tt.fileType, tt.fileSize)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.CodeInvalidMetadata, errx.AsErrorX(err).Code())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.fileName, m.FileName())
			assert.Equal(t, tt.fileType, m.FileType())
			assert.Equal(t, tt.fileSize, m.FileSize())
			assert.False(t, m.CreatedTime().IsZero())
			assert.False(t, m.UpdatedTime().IsZero())
		})
	}
}

func TestMetadataExtension(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		ext      string
		allowed  bool
	}{
		{name: "pdf", fileName: "report.pdf", ext: "pdf", allowed: true},
		{name: "uppercase extension", fileName: "SCAN.PDF", ext: "pdf", allowed: true},
		{name: "docx", fileName: "contract.docx", ext: "docx", allowed: true},
		{name: "jpeg", fileName: "photo.jpeg", ext: "jpeg", allowed: true},
		{name: "multiple dots", fileName: "archive.tar.txt", ext: "txt", allowed: true},
		{name: "executable", fileName: "setup.exe", ext: "exe", allowed: false},
		{name: "no extension", fileName: "README", ext: "", allowed: false},
		{name: "trailing dot", fileName: "weird.", ext: "", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := domain.NewMetadata(tt.fileName, "application/octet-stream", 1)
			require.NoError(t, err)

			assert.Equal(t, tt.ext, m.Extension())
			assert.Equal(t, tt.allowed, m.IsAllowedExtension())
		})
	}
}

func TestMetadataUpdateTime(t *testing.T) {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	m, err := domain.NewMetadataAt("report.pdf", "application/pdf", 1, created, created)
	require.NoError(t, err)

	updated := m.UpdateTime()

	assert.True(t, created.Equal(updated.CreatedTime()))
	assert.True(t, updated.UpdatedTime().After(created))
	// original is untouched
	assert.True(t, created.Equal(m.UpdatedTime()))
}

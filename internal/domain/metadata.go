package domain

import (
	"strings"
	"time"

	"github.com/code19m/errx"
)

const (
	maxFileNameLen = 240

	// MaxFileSize is the largest accepted payload, 10 MiB.
	MaxFileSize = 10 * 1024 * 1024
)

// allowedExtensions is the upload allow-list. Checked by ValidateForUpload,
// not at construction, so records that predate a rule change can still be
// rebuilt from storage.
var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
	"txt":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// Metadata holds the descriptive attributes of a stored file.
// Immutable; UpdateTime returns a fresh copy.
type Metadata struct {
	fileName    string
	fileType    string
	fileSize    int64
	createdTime time.Time
	updatedTime time.Time
}

// NewMetadata validates and builds metadata with both timestamps set to now.
func NewMetadata(fileName, fileType string, fileSize int64) (Metadata, error) {
	return NewMetadataAt(fileName, fileType, fileSize, time.Time{}, time.Time{})
}

// NewMetadataAt validates and builds metadata with explicit timestamps.
// Zero timestamps default to the current instant.
func NewMetadataAt(
	fileName, fileType string,
	fileSize int64,
	createdTime, updatedTime time.Time,
) (Metadata, error) {
	if strings.TrimSpace(fileName) == "" {
		return Metadata{}, invalidMetadata("file name must not be blank")
	}
	if len(fileName) > maxFileNameLen {
		return Metadata{}, invalidMetadata("file name must not exceed 240 characters")
	}
	if fileSize <= 0 {
		return Metadata{}, invalidMetadata("file size must be greater than zero")
	}
	if fileSize > MaxFileSize {
		return Metadata{}, invalidMetadata("file size must not exceed 10 MiB")
	}
	if strings.TrimSpace(fileType) == "" {
		return Metadata{}, invalidMetadata("file type must not be blank")
	}

	now := time.Now()
	if createdTime.IsZero() {
		createdTime = now
	}
	if updatedTime.IsZero() {
		updatedTime = now
	}

	return Metadata{
		fileName:    fileName,
		fileType:    fileType,
		fileSize:    fileSize,
		createdTime: createdTime,
		updatedTime: updatedTime,
	}, nil
}

func invalidMetadata(msg string) error {
	return errx.New(msg,
		errx.WithCode(CodeInvalidMetadata),
		errx.WithType(errx.T_Validation),
	)
}

// FileName returns the original file name.
func (m Metadata) FileName() string { return m.fileName }

// FileType returns the MIME type of the file.
func (m Metadata) FileType() string { return m.fileType }

// FileSize returns the payload size in bytes.
func (m Metadata) FileSize() int64 { return m.fileSize }

// CreatedTime returns the creation instant of the record.
func (m Metadata) CreatedTime() time.Time { return m.createdTime }

// UpdatedTime returns the last-update instant of the record.
func (m Metadata) UpdatedTime() time.Time { return m.updatedTime }

// Extension returns the lowercased substring after the last dot of the
// file name, or "" when the name has no extension.
func (m Metadata) Extension() string {
	idx := strings.LastIndex(m.fileName, ".")
	if idx == -1 || idx == len(m.fileName)-1 {
		return ""
	}
	return strings.ToLower(m.fileName[idx+1:])
}

// IsAllowedExtension reports whether the extension is in the upload allow-list.
func (m Metadata) IsAllowedExtension() bool {
	_, ok := allowedExtensions[m.Extension()]
	return ok
}

// UpdateTime returns a copy with updatedTime refreshed to now.
func (m Metadata) UpdateTime() Metadata {
	m.updatedTime = time.Now()
	return m
}

package service

import "time"

// UploadInput carries everything needed to store one file.
type UploadInput struct {
	// Data is the full payload. Streaming uploads are not supported.
	Data []byte

	// FileName is the original file name, including extension.
	FileName string

	// ContentType is the MIME type. When blank it is derived from the
	// file name extension.
	ContentType string

	// BucketName is the target bucket, validated against the S3 naming rules.
	BucketName string

	// EncryptionKey, when non-blank, enables encryption at rest. Must be
	// the base64 encoding of 32 raw bytes.
	EncryptionKey string

	// WantPreview requests a presigned preview URL in the response.
	WantPreview bool
}

// UploadResult is the outcome of a successful upload.
type UploadResult struct {
	// FileID is the opaque identifier assigned to the file.
	FileID string

	// AccessPath is the primary handle returned to the caller: the file ID
	// or derived path depending on addressing mode, or a presigned URL when
	// a preview was requested.
	AccessPath string

	FileName    string
	FileSize    int64
	FileType    string
	IsEncrypted bool
}

// DownloadResult carries the payload plus the stored attributes a transport
// adapter needs to set response headers.
type DownloadResult struct {
	Data     []byte
	FileName string
	FileType string
}

// FileInfo is the read-only projection returned by queries.
type FileInfo struct {
	FileID      string
	AccessPath  string
	FileName    string
	FileSize    int64
	FileType    string
	BucketName  string
	Directory   string
	IsEncrypted bool
	CreatedTime time.Time
	UpdatedTime time.Time
}

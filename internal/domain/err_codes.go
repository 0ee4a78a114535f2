package domain

// Error codes for domain validation failures.
const (
	// CodeInvalidFileID is returned when a file identifier does not match
	// the expected <timestamp>-<random> format.
	CodeInvalidFileID = "INVALID_FILE_ID"

	// CodeInvalidMetadata is returned when file metadata fails construction
	// validation (blank name, oversized file, missing type).
	CodeInvalidMetadata = "INVALID_FILE_METADATA"

	// CodeInvalidBucketName is returned when a bucket name violates the
	// S3 naming rules.
	CodeInvalidBucketName = "INVALID_BUCKET_NAME"

	// CodeDisallowedExtension is returned when a file's extension is not in
	// the upload allow-list.
	CodeDisallowedExtension = "DISALLOWED_FILE_EXTENSION"
)

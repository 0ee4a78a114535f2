package repository

// Error codes for metadata persistence operations.
const (
	// CodeFileRecordNotFound is returned when no record exists for the
	// given identifier or access path.
	CodeFileRecordNotFound = "FILE_RECORD_NOT_FOUND"

	// CodeDuplicateFileKey is returned when an insert violates the unique
	// constraint on the file identifier or access path.
	CodeDuplicateFileKey = "DUPLICATE_FILE_KEY"
)

package storage

// Error codes for object-store operations.
const (
	// CodeObjectNotFound is returned when no object exists under the
	// requested key.
	CodeObjectNotFound = "FILE_OBJECT_NOT_FOUND"

	// CodeStorageFault is returned on any transport or provider error,
	// distinct from not-found.
	CodeStorageFault = "STORAGE_FAULT"
)

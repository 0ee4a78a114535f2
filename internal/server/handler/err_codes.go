package handler

const (
	// CodeMissingFilePart indicates the multipart form has no "file" part.
	CodeMissingFilePart = "MISSING_FILE_PART"

	// CodeUnreadableFilePart indicates the multipart file part could not be read.
	CodeUnreadableFilePart = "UNREADABLE_FILE_PART"
)

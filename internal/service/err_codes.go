package service

// Error codes for file service operations.
const (
	// CodeBlankAccessKey is returned when the caller supplies an empty
	// identifier or access path.
	CodeBlankAccessKey = "BLANK_ACCESS_KEY"

	// CodeEncryptionKeyRequired is returned when downloading encrypted
	// content without a decryption key.
	CodeEncryptionKeyRequired = "ENCRYPTION_KEY_REQUIRED"

	// CodeEncryptedPreviewForbidden is returned when a presigned preview URL
	// is requested for encrypted content. Presigned URLs bypass the
	// encryption layer, so encrypted files must go through download.
	CodeEncryptedPreviewForbidden = "ENCRYPTED_PREVIEW_FORBIDDEN"

	// CodeInvalidExpiry is returned when a preview expiry is not positive.
	CodeInvalidExpiry = "INVALID_PREVIEW_EXPIRY"
)

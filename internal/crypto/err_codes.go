package crypto

// Error codes for encryption operations.
const (
	// CodeInvalidEncryptionKey is returned when a key does not base64-decode
	// to exactly 32 raw bytes.
	CodeInvalidEncryptionKey = "INVALID_ENCRYPTION_KEY"

	// CodeCorruptedCiphertext is returned when encrypted data is too short
	// to carry an IV or its padding does not verify.
	CodeCorruptedCiphertext = "CORRUPTED_CIPHERTEXT"
)

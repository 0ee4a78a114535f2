// Package crypto provides the symmetric encryption capability used to
// protect file payloads at rest.
//
// It defines a Provider interface so that the orchestration layer can be
// exercised with a deterministic cipher in tests while production uses
// AES-256-CBC.
package crypto

// Provider encrypts and decrypts whole byte payloads with a caller-supplied
// key. Implementations must be safe for concurrent use.
type Provider interface {
	// Encrypt encrypts data with key. The key must base64-decode to exactly
	// 32 raw bytes.
	Encrypt(data []byte, key string) ([]byte, error)

	// Decrypt reverses Encrypt with the same key.
	Decrypt(encrypted []byte, key string) ([]byte, error)

	// ValidateKey reports whether key base64-decodes to exactly 32 raw bytes.
	ValidateKey(key string) bool

	// Algorithm returns the cipher tag recorded in encryption envelopes.
	Algorithm() string
}

package domain

import "strings"

// DefaultEncryptionAlgorithm is the only cipher currently supported.
// The envelope carries the algorithm tag so that future negotiation does
// not require a schema change.
const DefaultEncryptionAlgorithm = "AES-256-CBC"

// EncryptionEnvelope records whether a file is encrypted at rest and with
// which algorithm. Decided once at FileResource creation, never mutated.
type EncryptionEnvelope struct {
	encrypted bool
	algorithm string
}

// UnencryptedEnvelope returns the envelope for a plaintext file.
func UnencryptedEnvelope() EncryptionEnvelope {
	return EncryptionEnvelope{}
}

// EncryptedEnvelope returns the envelope for a file encrypted with the
// default algorithm.
func EncryptedEnvelope() EncryptionEnvelope {
	return EncryptionEnvelope{encrypted: true, algorithm: DefaultEncryptionAlgorithm}
}

// EnvelopeOf rebuilds an envelope from stored values. An encrypted envelope
// with a blank algorithm gets the default tag; an unencrypted one always
// has an empty algorithm.
func EnvelopeOf(encrypted bool, algorithm string) EncryptionEnvelope {
	if !encrypted {
		return EncryptionEnvelope{}
	}
	if strings.TrimSpace(algorithm) == "" {
		algorithm = DefaultEncryptionAlgorithm
	}
	return EncryptionEnvelope{encrypted: true, algorithm: algorithm}
}

// IsEncrypted reports whether the file is encrypted at rest.
func (e EncryptionEnvelope) IsEncrypted() bool { return e.encrypted }

// Algorithm returns the cipher tag, or "" when not encrypted.
func (e EncryptionEnvelope) Algorithm() string { return e.algorithm }

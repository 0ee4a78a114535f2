package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"

	"github.com/code19m/errx"
)

const (
	keyLen = 32 // 256-bit raw key
	ivLen  = aes.BlockSize
)

// AESProvider implements Provider with AES-256-CBC and PKCS#7 padding.
//
// Output layout is a fresh 16-byte random IV followed by the ciphertext.
// CBC with padding provides confidentiality only; there is no
// authentication tag, so callers must not assume tamper detection.
type AESProvider struct{}

// NewAESProvider returns the production AES-256-CBC provider.
func NewAESProvider() *AESProvider {
	return &AESProvider{}
}

// Encrypt encrypts data with a fresh random IV per call.
func (p *AESProvider) Encrypt(data []byte, key string) ([]byte, error) {
	block, err := p.newCipher(key)
	if err != nil {
		return nil, err
	}

	iv := make([]byte, ivLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, errx.Wrap(err)
	}

	padded := padPKCS7(data)
	out := make([]byte, ivLen+len(padded))
	copy(out, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[ivLen:], padded)

	return out, nil
}

// Decrypt splits the IV from the ciphertext, decrypts and strips padding.
func (p *AESProvider) Decrypt(encrypted []byte, key string) ([]byte, error) {
	block, err := p.newCipher(key)
	if err != nil {
		return nil, err
	}

	if len(encrypted) < ivLen {
		return nil, errx.New(
			"encrypted data is too short to contain an IV",
			errx.WithCode(CodeCorruptedCiphertext),
			errx.WithType(errx.T_Validation),
		)
	}

	iv, ciphertext := encrypted[:ivLen], encrypted[ivLen:]
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, errx.New(
			"ciphertext length is not a multiple of the block size",
			errx.WithCode(CodeCorruptedCiphertext),
			errx.WithType(errx.T_Validation),
		)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	return unpadPKCS7(plain)
}

// ValidateKey reports whether key base64-decodes to exactly 32 raw bytes.
func (p *AESProvider) ValidateKey(key string) bool {
	raw, err := base64.StdEncoding.DecodeString(key)
	return err == nil && len(raw) == keyLen
}

// Algorithm returns the envelope tag for this cipher.
func (p *AESProvider) Algorithm() string {
	return "AES-256-CBC"
}

func (p *AESProvider) newCipher(key string) (cipher.Block, error) {
	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil || len(raw) != keyLen {
		return nil, errx.New(
			"encryption key must be the base64 encoding of 32 raw bytes",
			errx.WithCode(CodeInvalidEncryptionKey),
			errx.WithType(errx.T_Validation),
		)
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, errx.Wrap(err)
	}
	return block, nil
}

func padPKCS7(data []byte) []byte {
	n := aes.BlockSize - len(data)%aes.BlockSize
	return append(append([]byte{}, data...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpadPKCS7(data []byte) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > aes.BlockSize || n > len(data) {
		return nil, badPadding()
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, badPadding()
		}
	}
	return data[:len(data)-n], nil
}

func badPadding() error {
	return errx.New(
		"ciphertext padding does not verify",
		errx.WithCode(CodeCorruptedCiphertext),
		errx.WithType(errx.T_Validation),
	)
}

package crypto_test

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/filevault/internal/crypto"
)

func testKey() string {
	return base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x42}, 32))
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	p := crypto.NewAESProvider()
	key := testKey()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "short payload", data: []byte("PDF-America/12")},
		{name: "exact block", data: bytes.Repeat([]byte{0x01}, 16)},
		{name: "multi block", data: bytes.Repeat([]byte("abcdef"), 100)},
		{name: "single byte", data: []byte{0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := p.Encrypt(tt.data, key)
			require.NoError(t, err)

			// IV plus at least one padded block
			assert.GreaterOrEqual(t, len(encrypted), 32)
			assert.Equal(t, 0, (len(encrypted)-16)%16)
			assert.NotEqual(t, tt.data, encrypted[16:16+len(tt.data)])

			decrypted, err := p.Decrypt(encrypted, key)
			require.NoError(t, err)
			assert.Equal(t, tt.data, decrypted)
		})
	}
}

func TestEncryptUsesFreshIV(t *testing.T) {
	p := crypto.NewAESProvider()
	key := testKey()
	data := []byte("same plaintext")

	first, err := p.Encrypt(data, key)
	require.NoError(t, err)
	second, err := p.Encrypt(data, key)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, first[:16], second[:16])
}

func TestEncryptRejectsInvalidKey(t *testing.T) {
	p := crypto.NewAESProvider()

	tests := []struct {
		name string
		key  string
	}{
		{name: "blank", key: ""},
		{name: "not base64", key: "!!not-base64!!"},
		{name: "wrong length", key: base64.StdEncoding.EncodeToString([]byte("short"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Encrypt([]byte("data"), tt.key)

			require.Error(t, err)
			e := errx.AsErrorX(err)
			assert.Equal(t, crypto.CodeInvalidEncryptionKey, e.Code())
			assert.Equal(t, errx.T_Validation, e.Type())
		})
	}
}

func TestDecryptRejectsCorruptedInput(t *testing.T) {
	p := crypto.NewAESProvider()
	key := testKey()

	valid, err := p.Encrypt([]byte("payload"), key)
	require.NoError(t, err)

	truncatedBlock := make([]byte, len(valid)-1)
	copy(truncatedBlock, valid)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "shorter than iv", data: valid[:10]},
		{name: "iv only", data: valid[:16]},
		{name: "partial block", data: truncatedBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Decrypt(tt.data, key)

			require.Error(t, err)
			e := errx.AsErrorX(err)
			assert.Equal(t, crypto.CodeCorruptedCiphertext, e.Code())
			assert.Equal(t, errx.T_Validation, e.Type())
		})
	}
}

func TestValidateKey(t *testing.T) {
	p := crypto.NewAESProvider()

	assert.True(t, p.ValidateKey(testKey()))
	assert.False(t, p.ValidateKey(""))
	assert.False(t, p.ValidateKey("plain text key"))
	assert.False(t, p.ValidateKey(base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x42}, 16))))
}

func TestAlgorithm(t *testing.T) {
	assert.Equal(t, "AES-256-CBC", crypto.NewAESProvider().Algorithm())
}

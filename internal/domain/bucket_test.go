package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/filevault/internal/domain"
)

func TestValidateBucketName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		valid      bool
		normalized string
		message    string
	}{
		{
			name:       "simple name",
			input:      "my-bucket",
			valid:      true,
			normalized: "my-bucket",
		},
		{
			name:       "minimum length",
			input:      "abc",
			valid:      true,
			normalized: "abc",
		},
		{
			name:       "maximum length",
			input:      strings.Repeat("a", 63),
			valid:      true,
			normalized: strings.Repeat("a", 63),
		},
		{
			name:       "surrounding whitespace is trimmed",
			input:      "  contracts-bucket  ",
			valid:      true,
			normalized: "contracts-bucket",
		},
		{
			name:       "digits only",
			input:      "1234",
			valid:      true,
			normalized: "1234",
		},
		{
			name:    "blank",
			input:   "   ",
			message: "bucket name must not be blank",
		},
		{
			name:    "too short",
			input:   "ab",
			message: "bucket name must be between 3 and 63 characters long",
		},
		{
			name:    "too long",
			input:   strings.Repeat("a", 64),
			message: "bucket name must be between 3 and 63 characters long",
		},
		{
			name:    "uppercase letters",
			input:   "My-Bucket",
			message: "bucket name must not contain uppercase letters",
		},
		{
			name:    "consecutive hyphens",
			input:   "my--bucket",
			message: "bucket name must not contain consecutive hyphens",
		},
		{
			name:    "leading hyphen",
			input:   "-bucket",
			message: "bucket name may contain only lowercase letters, digits and hyphens, and must begin and end with a letter or digit",
		},
		{
			name:    "trailing hyphen",
			input:   "bucket-",
			message: "bucket name may contain only lowercase letters, digits and hyphens, and must begin and end with a letter or digit",
		},
		{
			name:    "underscore",
			input:   "my_bucket",
			message: "bucket name may contain only lowercase letters, digits and hyphens, and must begin and end with a letter or digit",
		},
		{
			name:    "dot",
			input:   "my.bucket",
			message: "bucket name may contain only lowercase letters, digits and hyphens, and must begin and end with a letter or digit",
		},
		{
			name:    "ip address shape",
			input:   "192.168.1.1",
			message: "bucket name may contain only lowercase letters, digits and hyphens, and must begin and end with a letter or digit",
		},
		{
			name:    "reserved prefix",
			input:   "xn--bucket",
			message: "bucket name must not contain consecutive hyphens",
		},
		{
			name:    "reserved s3alias suffix",
			input:   "backup-s3alias",
			message: "bucket name must not end with the reserved suffix \"-s3alias\" or \"--ol-s3\"",
		},
		{
			name:    "reserved ol-s3 suffix",
			input:   "test--ol-s3",
			message: "bucket name must not contain consecutive hyphens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := domain.ValidateBucketName(tt.input)

			assert.Equal(t, tt.valid, res.Valid)
			if tt.valid {
				assert.Equal(t, tt.normalized, res.NormalizedName)
				return
			}

			assert.Equal(t, tt.message, res.Message)
			assert.Empty(t, res.NormalizedName)
		})
	}
}

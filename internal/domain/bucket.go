package domain

import (
	"regexp"
	"strings"
)

const (
	minBucketNameLen = 3
	maxBucketNameLen = 63
)

var (
	bucketNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)
	ipv4Pattern       = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
)

// BucketNameResult is the outcome of bucket name validation.
// NormalizedName is set only when the name is valid.
type BucketNameResult struct {
	Valid          bool
	Message        string
	NormalizedName string
}

// ValidateBucketName checks name against the Amazon S3 bucket naming rules.
// Checks run in a fixed order and the first failure determines the message:
// blank, length, uppercase, consecutive hyphens, character class, IP shape,
// reserved prefix, reserved suffixes. On success NormalizedName carries the
// lowercased trimmed input.
func ValidateBucketName(name string) BucketNameResult {
	if strings.TrimSpace(name) == "" {
		return bucketNameError("bucket name must not be blank")
	}

	trimmed := strings.TrimSpace(name)

	if len(trimmed) < minBucketNameLen || len(trimmed) > maxBucketNameLen {
		return bucketNameError("bucket name must be between 3 and 63 characters long")
	}
	if trimmed != strings.ToLower(trimmed) {
		return bucketNameError("bucket name must not contain uppercase letters")
	}
	if strings.Contains(trimmed, "--") {
		return bucketNameError("bucket name must not contain consecutive hyphens")
	}
	if !bucketNamePattern.MatchString(trimmed) {
		return bucketNameError(
			"bucket name may contain only lowercase letters, digits and hyphens, and must begin and end with a letter or digit",
		)
	}
	if ipv4Pattern.MatchString(trimmed) {
		return bucketNameError("bucket name must not be formatted as an IP address")
	}
	if strings.HasPrefix(trimmed, "xn--") {
		return bucketNameError("bucket name must not start with the reserved prefix \"xn--\"")
	}
	if strings.HasSuffix(trimmed, "-s3alias") || strings.HasSuffix(trimmed, "--ol-s3") {
		return bucketNameError("bucket name must not end with the reserved suffix \"-s3alias\" or \"--ol-s3\"")
	}

	return BucketNameResult{
		Valid:          true,
		Message:        "bucket name is valid",
		NormalizedName: strings.ToLower(trimmed),
	}
}

func bucketNameError(msg string) BucketNameResult {
	return BucketNameResult{Valid: false, Message: msg}
}

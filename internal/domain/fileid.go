// Package domain holds the file storage domain model: identifiers, metadata,
// storage locations, encryption envelopes and the FileResource aggregate.
package domain

import (
	"fmt"
	"math/rand"
	"regexp"
	"sync"
	"time"

	"github.com/code19m/errx"
)

const (
	fileIDTimeLayout = "20060102150405"
	randomPartLen    = 8
	randomChars      = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var fileIDPattern = regexp.MustCompile(`^\d{14}-[a-z0-9]{8}$`)

// FileID is the opaque per-file identifier of the form
// <yyyyMMddHHmmss>-<8 random lowercase alphanumerics>,
// e.g. "20240921143022-a8b9c1d2". Immutable once created.
type FileID struct {
	value string
}

// ParseFileID validates value against the identifier grammar and returns
// the FileID. The two-part structure, the 14-digit timestamp and the
// 8-character random part must all match exactly.
func ParseFileID(value string) (FileID, error) {
	if !fileIDPattern.MatchString(value) {
		return FileID{}, errx.New(
			"file id must have the form yyyyMMddHHmmss-xxxxxxxx",
			errx.WithCode(CodeInvalidFileID),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"value": value}),
		)
	}
	return FileID{value: value}, nil
}

// String returns the raw identifier value.
func (id FileID) String() string {
	return id.value
}

// IsZero reports whether the identifier is the zero value.
func (id FileID) IsZero() bool {
	return id.value == ""
}

// Timestamp returns the instant embedded in the identifier.
func (id FileID) Timestamp() time.Time {
	// The value is validated at construction, so the parse cannot fail.
	ts, _ := time.ParseInLocation(fileIDTimeLayout, id.value[:len(fileIDTimeLayout)], time.Local)
	return ts
}

// RandomPart returns the 8-character random suffix.
func (id FileID) RandomPart() string {
	return id.value[len(fileIDTimeLayout)+1:]
}

// IDGenerator produces fresh FileIDs from an explicit time source and
// random source, keeping generation deterministic in tests. It is safe
// for concurrent use.
//
// The generator performs no uniqueness check against existing identifiers;
// the repository's unique constraints are the only collision guard.
type IDGenerator struct {
	mu  sync.Mutex
	now func() time.Time
	rnd *rand.Rand
}

// NewIDGenerator returns a generator backed by the wall clock and a
// time-seeded PRNG. Uniqueness, not secrecy, is the goal here, so a
// cryptographic source is deliberately not used.
func NewIDGenerator() *IDGenerator {
	return NewIDGeneratorWith(time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewIDGeneratorWith returns a generator with explicit time and random
// sources.
func NewIDGeneratorWith(now func() time.Time, rnd *rand.Rand) *IDGenerator {
	return &IDGenerator{now: now, rnd: rnd}
}

// Generate returns a new FileID for the current instant, truncated to seconds.
func (g *IDGenerator) Generate() FileID {
	g.mu.Lock()
	defer g.mu.Unlock()

	suffix := make([]byte, randomPartLen)
	for i := range suffix {
		suffix[i] = randomChars[g.rnd.Intn(len(randomChars))]
	}

	value := fmt.Sprintf("%s-%s", g.now().Format(fileIDTimeLayout), suffix)
	return FileID{value: value}
}

package domain_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/filevault/internal/domain"
)

func TestParseFileID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:  "valid identifier",
			value: "20240921143022-a8b9c1d2",
		},
		{
			name:  "all digit random part",
			value: "20240101000000-12345678",
		},
		{
			name:    "blank",
			value:   "",
			wantErr: true,
		},
		{
			name:    "missing separator",
			value:   "20240921143022a8b9c1d2",
			wantErr: true,
		},
		{
			name:    "short timestamp",
			value:   "2024092114302-a8b9c1d2",
			wantErr: true,
		},
		{
			name:    "short random part",
			value:   "20240921143022-a8b9c1",
			wantErr: true,
		},
		{
			name:    "uppercase random part",
			value:   "20240921143022-A8B9C1D2",
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			value:   "20240921143022-a8b9c1d2x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := domain.ParseFileID(tt.value)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.CodeInvalidFileID, errx.AsErrorX(err).Code())
				assert.True(t, id.IsZero())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.value, id.String())
			assert.False(t, id.IsZero())
		})
	}
}

func TestFileIDParts(t *testing.T) {
	id, err := domain.ParseFileID("20240921143022-a8b9c1d2")
	require.NoError(t, err)

	assert.Equal(t, "a8b9c1d2", id.RandomPart())

	ts := id.Timestamp()
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, time.September, ts.Month())
	assert.Equal(t, 21, ts.Day())
	assert.Equal(t, 14, ts.Hour())
	assert.Equal(t, 30, ts.Minute())
	assert.Equal(t, 22, ts.Second())
}

func TestIDGeneratorDeterministic(t *testing.T) {
	now := time.Date(2024, time.September, 21, 14, 30, 22, 0, time.Local)
	gen := domain.NewIDGeneratorWith(
		func() time.Time { return now },
		rand.New(rand.NewSource(42)),
	)

	id := gen.Generate()

	assert.Equal(t, "20240921143022", id.String()[:14])
	assert.Len(t, id.RandomPart(), 8)
	assert.True(t, now.Equal(id.Timestamp()))

	// same instant, new random part
	other := gen.Generate()
	assert.NotEqual(t, id.String(), other.String())
}

func TestIDGeneratorProducesParsableIDs(t *testing.T) {
	gen := domain.NewIDGenerator()

	for range 100 {
		id := gen.Generate()

		parsed, err := domain.ParseFileID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id.String(), parsed.String())
	}
}

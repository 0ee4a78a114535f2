package memory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/internal/repository"
	"github.com/rise-and-shine/filevault/internal/repository/memory"
)

func newResource(t *testing.T, seed int64) *domain.FileResource {
	t.Helper()

	gen := domain.NewIDGeneratorWith(
		func() time.Time { return time.Date(2024, time.September, 21, 14, 30, 22, 0, time.Local) },
		rand.New(rand.NewSource(seed)),
	)
	r, err := domain.CreateFileResource(
		gen,
		"report.pdf", "application/pdf", 1024,
		"contracts-bucket", domain.SourceTypeIDUpload, false,
	)
	require.NoError(t, err)
	return r
}

func TestSaveAssignsID(t *testing.T) {
	repo := memory.New()

	saved, err := repo.Save(t.Context(), newResource(t, 1))
	require.NoError(t, err)

	assert.Equal(t, int64(1), saved.ID())
	assert.Equal(t, 1, repo.Count())
}

func TestSaveRejectsDuplicateKeys(t *testing.T) {
	repo := memory.New()
	r := newResource(t, 1)

	_, err := repo.Save(t.Context(), r)
	require.NoError(t, err)

	_, err = repo.Save(t.Context(), r)
	require.Error(t, err)
	e := errx.AsErrorX(err)
	assert.Equal(t, repository.CodeDuplicateFileKey, e.Code())
	assert.Equal(t, errx.T_Conflict, e.Type())
}

func TestFindByBothKeys(t *testing.T) {
	repo := memory.New()
	r := newResource(t, 1)

	saved, err := repo.Save(t.Context(), r)
	require.NoError(t, err)

	byID, err := repo.FindByFileID(t.Context(), saved.FileID())
	require.NoError(t, err)
	assert.Equal(t, saved.ID(), byID.ID())

	byURL, err := repo.FindByFileURL(t.Context(), saved.FileURL())
	require.NoError(t, err)
	assert.Equal(t, saved.ID(), byURL.ID())
}

func TestFindMissingRecord(t *testing.T) {
	repo := memory.New()
	r := newResource(t, 1)

	_, err := repo.FindByFileID(t.Context(), r.FileID())
	require.Error(t, err)
	e := errx.AsErrorX(err)
	assert.Equal(t, repository.CodeFileRecordNotFound, e.Code())
	assert.Equal(t, errx.T_NotFound, e.Type())

	_, err = repo.FindByFileURL(t.Context(), r.FileURL())
	require.Error(t, err)
	assert.Equal(t, repository.CodeFileRecordNotFound, errx.AsErrorX(err).Code())
}

func TestDeleteRemovesBothKeys(t *testing.T) {
	repo := memory.New()

	saved, err := repo.Save(t.Context(), newResource(t, 1))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByFileID(t.Context(), saved.FileID()))
	assert.Zero(t, repo.Count())

	// the URL key must be gone as well
	exists, err := repo.ExistsByFileURL(t.Context(), saved.FileURL())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteByURLRemovesBothKeys(t *testing.T) {
	repo := memory.New()

	saved, err := repo.Save(t.Context(), newResource(t, 1))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByFileURL(t.Context(), saved.FileURL()))

	exists, err := repo.ExistsByFileID(t.Context(), saved.FileID())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteMissingRecord(t *testing.T) {
	repo := memory.New()
	r := newResource(t, 1)

	err := repo.DeleteByFileID(t.Context(), r.FileID())
	require.Error(t, err)
	assert.Equal(t, repository.CodeFileRecordNotFound, errx.AsErrorX(err).Code())

	err = repo.DeleteByFileURL(t.Context(), r.FileURL())
	require.Error(t, err)
	assert.Equal(t, repository.CodeFileRecordNotFound, errx.AsErrorX(err).Code())
}

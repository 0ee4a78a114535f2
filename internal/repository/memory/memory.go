// Package memory provides an in-process implementation of the
// repository.FileRepository interface for tests and local development.
//
// It models the dual-key layout the same way the PostgreSQL store does:
// one record set with two unique indexes, never two divergent stores.
package memory

import (
	"context"
	"sync"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/internal/repository"
)

// Repository implements repository.FileRepository with maps.
// Safe for concurrent use.
type Repository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[string]*domain.FileResource
	byURL  map[string]*domain.FileResource
}

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{
		byID:  make(map[string]*domain.FileResource),
		byURL: make(map[string]*domain.FileResource),
	}
}

// Save inserts the resource, enforcing uniqueness on both keys.
func (r *Repository) Save(_ context.Context, resource *domain.FileResource) (*domain.FileResource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fileID := resource.FileID().String()
	fileURL := resource.FileURL()

	if _, ok := r.byID[fileID]; ok {
		return nil, duplicate(fileID)
	}
	if _, ok := r.byURL[fileURL]; ok {
		return nil, duplicate(fileURL)
	}

	r.nextID++
	saved := resource.WithID(r.nextID)
	r.byID[fileID] = saved
	r.byURL[fileURL] = saved

	return saved, nil
}

// FindByFileID resolves the record keyed by the opaque identifier.
func (r *Repository) FindByFileID(_ context.Context, fileID domain.FileID) (*domain.FileResource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[fileID.String()]
	if !ok {
		return nil, notFound(fileID.String())
	}
	return res, nil
}

// FindByFileURL resolves the record keyed by the derived access path.
func (r *Repository) FindByFileURL(_ context.Context, fileURL string) (*domain.FileResource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byURL[fileURL]
	if !ok {
		return nil, notFound(fileURL)
	}
	return res, nil
}

// DeleteByFileID removes the record keyed by the opaque identifier.
func (r *Repository) DeleteByFileID(_ context.Context, fileID domain.FileID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byID[fileID.String()]
	if !ok {
		return notFound(fileID.String())
	}
	delete(r.byID, fileID.String())
	delete(r.byURL, res.FileURL())
	return nil
}

// DeleteByFileURL removes the record keyed by the derived access path.
func (r *Repository) DeleteByFileURL(_ context.Context, fileURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byURL[fileURL]
	if !ok {
		return notFound(fileURL)
	}
	delete(r.byURL, fileURL)
	delete(r.byID, res.FileID().String())
	return nil
}

// ExistsByFileID reports whether a record exists for the identifier.
func (r *Repository) ExistsByFileID(_ context.Context, fileID domain.FileID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[fileID.String()]
	return ok, nil
}

// ExistsByFileURL reports whether a record exists for the access path.
func (r *Repository) ExistsByFileURL(_ context.Context, fileURL string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byURL[fileURL]
	return ok, nil
}

// Count returns the number of stored records. Test helper.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func notFound(key string) error {
	return errx.New("file record not found",
		errx.WithCode(repository.CodeFileRecordNotFound),
		errx.WithType(errx.T_NotFound),
		errx.WithDetails(errx.D{"key": key}),
	)
}

func duplicate(key string) error {
	return errx.New("file id or file url already exists",
		errx.WithCode(repository.CodeDuplicateFileKey),
		errx.WithType(errx.T_Conflict),
		errx.WithDetails(errx.D{"key": key}),
	)
}

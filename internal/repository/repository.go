// Package repository defines the metadata persistence port for file
// resources.
//
// A single record is keyed two ways: by the opaque file identifier and by
// the derived access path. Both keys are unique across all records; the
// store enforces this with unique constraints since the identifier
// generator does not itself guarantee global uniqueness.
package repository

import (
	"context"

	"github.com/rise-and-shine/filevault/internal/domain"
)

// FileRepository persists and resolves FileResource records.
// Implementations must be safe for concurrent use.
type FileRepository interface {
	// Save inserts the resource and returns a copy carrying the assigned
	// persistence ID. A duplicate file ID or file URL fails with
	// CodeDuplicateFileKey.
	Save(ctx context.Context, resource *domain.FileResource) (*domain.FileResource, error)

	// FindByFileID resolves the record keyed by the opaque identifier.
	FindByFileID(ctx context.Context, fileID domain.FileID) (*domain.FileResource, error)

	// FindByFileURL resolves the record keyed by the derived access path.
	FindByFileURL(ctx context.Context, fileURL string) (*domain.FileResource, error)

	// DeleteByFileID removes the record keyed by the opaque identifier.
	DeleteByFileID(ctx context.Context, fileID domain.FileID) error

	// DeleteByFileURL removes the record keyed by the derived access path.
	DeleteByFileURL(ctx context.Context, fileURL string) error

	// ExistsByFileID reports whether a record exists for the identifier.
	ExistsByFileID(ctx context.Context, fileID domain.FileID) (bool, error)

	// ExistsByFileURL reports whether a record exists for the access path.
	ExistsByFileURL(ctx context.Context, fileURL string) (bool, error)
}

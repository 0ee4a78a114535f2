// Package postgres provides the bun-backed implementation of the
// repository.FileRepository interface.
package postgres

import (
	"context"

	"github.com/code19m/errx"
	"github.com/uptrace/bun"

	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/internal/pg"
	"github.com/rise-and-shine/filevault/internal/repository"
)

// Repository implements repository.FileRepository on top of PostgreSQL.
type Repository struct {
	db *bun.DB
}

// New creates a new PostgreSQL file repository.
func New(db *bun.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts the resource inside a local transaction and returns a copy
// carrying the assigned persistence ID. The transaction covers only the
// metadata store; the object store is never a participant.
func (r *Repository) Save(ctx context.Context, resource *domain.FileResource) (*domain.FileResource, error) {
	rec := recordFromResource(resource)

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(rec).Returning("id").Exec(ctx)
		return err
	})
	if err != nil {
		if pg.IsConflict(err) {
			return nil, errx.New("file id or file url already exists",
				errx.WithCode(repository.CodeDuplicateFileKey),
				errx.WithType(errx.T_Conflict),
				errx.WithDetails(pg.ErrorDetails(err)),
			)
		}
		return nil, errx.Wrap(err, errx.WithDetails(pg.ErrorDetails(err)))
	}

	return resource.WithID(rec.ID), nil
}

// FindByFileID resolves the record keyed by the opaque identifier.
func (r *Repository) FindByFileID(ctx context.Context, fileID domain.FileID) (*domain.FileResource, error) {
	return r.findBy(ctx, "file_id = ?", fileID.String())
}

// FindByFileURL resolves the record keyed by the derived access path.
func (r *Repository) FindByFileURL(ctx context.Context, fileURL string) (*domain.FileResource, error) {
	return r.findBy(ctx, "file_url = ?", fileURL)
}

// DeleteByFileID removes the record keyed by the opaque identifier.
func (r *Repository) DeleteByFileID(ctx context.Context, fileID domain.FileID) error {
	return r.deleteBy(ctx, "file_id = ?", fileID.String())
}

// DeleteByFileURL removes the record keyed by the derived access path.
func (r *Repository) DeleteByFileURL(ctx context.Context, fileURL string) error {
	return r.deleteBy(ctx, "file_url = ?", fileURL)
}

// ExistsByFileID reports whether a record exists for the identifier.
func (r *Repository) ExistsByFileID(ctx context.Context, fileID domain.FileID) (bool, error) {
	return r.existsBy(ctx, "file_id = ?", fileID.String())
}

// ExistsByFileURL reports whether a record exists for the access path.
func (r *Repository) ExistsByFileURL(ctx context.Context, fileURL string) (bool, error) {
	return r.existsBy(ctx, "file_url = ?", fileURL)
}

func (r *Repository) findBy(ctx context.Context, where string, arg any) (*domain.FileResource, error) {
	rec := new(fileRecord)

	err := r.db.NewSelect().Model(rec).Where(where, arg).Scan(ctx)
	if err != nil {
		if pg.IsNotFound(err) {
			return nil, notFound(arg)
		}
		return nil, errx.Wrap(err, errx.WithDetails(pg.ErrorDetails(err)))
	}

	return resourceFromRecord(rec)
}

func (r *Repository) deleteBy(ctx context.Context, where string, arg any) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().Model((*fileRecord)(nil)).Where(where, arg).Exec(ctx)
		if err != nil {
			return errx.Wrap(err, errx.WithDetails(pg.ErrorDetails(err)))
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return errx.Wrap(err)
		}
		if affected == 0 {
			return notFound(arg)
		}
		return nil
	})
	if err != nil {
		return errx.Wrap(err)
	}
	return nil
}

func (r *Repository) existsBy(ctx context.Context, where string, arg any) (bool, error) {
	exists, err := r.db.NewSelect().Model((*fileRecord)(nil)).Where(where, arg).Exists(ctx)
	if err != nil {
		return false, errx.Wrap(err, errx.WithDetails(pg.ErrorDetails(err)))
	}
	return exists, nil
}

func notFound(key any) error {
	return errx.New("file record not found",
		errx.WithCode(repository.CodeFileRecordNotFound),
		errx.WithType(errx.T_NotFound),
		errx.WithDetails(errx.D{"key": key}),
	)
}

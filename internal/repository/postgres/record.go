package postgres

import (
	"time"

	"github.com/code19m/errx"
	"github.com/uptrace/bun"

	"github.com/rise-and-shine/filevault/internal/domain"
)

// fileRecord is the bun model backing the files table. One row per stored
// file, uniquely keyed by both file_id and file_url.
type fileRecord struct {
	bun.BaseModel `bun:"table:files,alias:f"`

	ID                  int64     `bun:"id,pk,autoincrement"`
	FileID              string    `bun:"file_id,notnull,unique"`
	Directory           string    `bun:"directory,notnull"`
	FileURL             string    `bun:"file_url,notnull,unique"`
	FileType            string    `bun:"file_type,notnull"`
	FileName            string    `bun:"file_name,notnull"`
	FileSize            int64     `bun:"file_size,notnull"`
	BucketName          string    `bun:"bucket_name,notnull"`
	SourceType          string    `bun:"source_type"`
	IsEncrypted         bool      `bun:"is_encrypted,notnull,default:false"`
	EncryptionAlgorithm string    `bun:"encryption_algorithm,nullzero"`
	CreatedTime         time.Time `bun:"created_time,nullzero"`
	UpdatedTime         time.Time `bun:"updated_time,nullzero"`
}

func recordFromResource(r *domain.FileResource) *fileRecord {
	return &fileRecord{
		ID:                  r.ID(),
		FileID:              r.FileID().String(),
		Directory:           r.Location().Directory(),
		FileURL:             r.FileURL(),
		FileType:            r.Metadata().FileType(),
		FileName:            r.Metadata().FileName(),
		FileSize:            r.Metadata().FileSize(),
		BucketName:          r.Location().BucketName(),
		SourceType:          r.SourceType(),
		IsEncrypted:         r.Envelope().IsEncrypted(),
		EncryptionAlgorithm: r.Envelope().Algorithm(),
		CreatedTime:         r.Metadata().CreatedTime(),
		UpdatedTime:         r.Metadata().UpdatedTime(),
	}
}

// resourceFromRecord rebuilds the aggregate from a stored row. The row is a
// trusted source; a row that no longer satisfies the value-object rules
// means the table was tampered with and surfaces as an internal error.
func resourceFromRecord(rec *fileRecord) (*domain.FileResource, error) {
	fileID, err := domain.ParseFileID(rec.FileID)
	if err != nil {
		return nil, corruptRecord(rec, err)
	}

	metadata, err := domain.NewMetadataAt(
		rec.FileName, rec.FileType, rec.FileSize,
		rec.CreatedTime, rec.UpdatedTime,
	)
	if err != nil {
		return nil, corruptRecord(rec, err)
	}

	location, err := domain.LocationOf(rec.BucketName, rec.Directory, rec.FileURL)
	if err != nil {
		return nil, corruptRecord(rec, err)
	}

	envelope := domain.EnvelopeOf(rec.IsEncrypted, rec.EncryptionAlgorithm)

	return domain.RebuildFileResource(rec.ID, fileID, metadata, location, envelope, rec.SourceType), nil
}

func corruptRecord(rec *fileRecord, err error) error {
	return errx.Wrap(err,
		errx.WithType(errx.T_Internal),
		errx.WithDetails(errx.D{"record_id": rec.ID, "file_id": rec.FileID}),
	)
}

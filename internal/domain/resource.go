package domain

import (
	"fmt"

	"github.com/code19m/errx"
)

// Source types recording which addressing mode created a resource.
const (
	SourceTypeIDUpload  = "UUID_UPLOAD"
	SourceTypeURLUpload = "URL_UPLOAD"
)

// FileResource is the aggregate root tying together the identifier,
// metadata, storage location and encryption envelope of one stored file.
//
// The identifier and location are set together at creation and never
// diverge; the envelope is decided once and is immutable afterwards.
// A resource gains a persistence ID only after a successful repository save.
type FileResource struct {
	id         int64
	fileID     FileID
	metadata   Metadata
	location   StorageLocation
	envelope   EncryptionEnvelope
	sourceType string
}

// CreateFileResource builds a new resource before any I/O: it generates a
// fresh identifier, derives the storage location from it and fixes the
// encryption envelope. The returned resource has no persistence ID yet.
func CreateFileResource(
	gen *IDGenerator,
	fileName, fileType string,
	fileSize int64,
	bucketName, sourceType string,
	encrypted bool,
) (*FileResource, error) {
	fileID := gen.Generate()

	metadata, err := NewMetadata(fileName, fileType, fileSize)
	if err != nil {
		return nil, err
	}

	location, err := GenerateLocation(bucketName, fileID, fileName)
	if err != nil {
		return nil, err
	}

	envelope := UnencryptedEnvelope()
	if encrypted {
		envelope = EncryptedEnvelope()
	}

	return &FileResource{
		fileID:     fileID,
		metadata:   metadata,
		location:   location,
		envelope:   envelope,
		sourceType: sourceType,
	}, nil
}

// RebuildFileResource reconstructs a resource loaded from storage.
// The record is a trusted source, so no business rules are re-checked.
func RebuildFileResource(
	id int64,
	fileID FileID,
	metadata Metadata,
	location StorageLocation,
	envelope EncryptionEnvelope,
	sourceType string,
) *FileResource {
	return &FileResource{
		id:         id,
		fileID:     fileID,
		metadata:   metadata,
		location:   location,
		envelope:   envelope,
		sourceType: sourceType,
	}
}

// ValidateForUpload enforces the extension allow-list. It is not part of
// construction so that records predating a rule change can still be rebuilt.
func (r *FileResource) ValidateForUpload() error {
	if !r.metadata.IsAllowedExtension() {
		return errx.New(
			fmt.Sprintf("file extension %q is not allowed for upload", r.metadata.Extension()),
			errx.WithCode(CodeDisallowedExtension),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"file_name": r.metadata.FileName()}),
		)
	}
	return nil
}

// ID returns the persistence ID, zero before the first save.
func (r *FileResource) ID() int64 { return r.id }

// FileID returns the opaque identifier.
func (r *FileResource) FileID() FileID { return r.fileID }

// Metadata returns the descriptive attributes.
func (r *FileResource) Metadata() Metadata { return r.metadata }

// Location returns the storage location.
func (r *FileResource) Location() StorageLocation { return r.location }

// Envelope returns the encryption envelope.
func (r *FileResource) Envelope() EncryptionEnvelope { return r.envelope }

// SourceType returns the addressing-mode tag the resource was created with.
func (r *FileResource) SourceType() string { return r.sourceType }

// ObjectKey returns the object-store key for this resource.
func (r *FileResource) ObjectKey() string {
	return r.location.ObjectKey(r.metadata.FileName())
}

// FileURL returns the externally visible access path.
func (r *FileResource) FileURL() string {
	return r.location.FileURL()
}

// RequiresEncryption reports whether payload bytes must pass through the
// encryption provider on both store and retrieve.
func (r *FileResource) RequiresEncryption() bool {
	return r.envelope.IsEncrypted()
}

// WithID returns a copy carrying the persistence ID assigned by the store.
func (r *FileResource) WithID(id int64) *FileResource {
	cp := *r
	cp.id = id
	return &cp
}

// UpdateMetadata returns a copy with the metadata update time refreshed.
func (r *FileResource) UpdateMetadata() *FileResource {
	cp := *r
	cp.metadata = r.metadata.UpdateTime()
	return &cp
}

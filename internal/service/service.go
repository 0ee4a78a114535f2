// Package service orchestrates the upload, download, query, delete and
// preview workflows across the encryption provider, the object store and
// the metadata repository.
//
// Two parallel addressing modes resolve to the same underlying object and
// record: ID mode addresses files by the opaque generated identifier, URL
// mode by the derived access path. Each request is handled synchronously
// and independently; no state is shared across requests.
//
// Upload and delete are not atomic across the object store and the metadata
// store. The object-store call sits outside the metadata transaction, so a
// failure between the two steps leaves an orphaned object behind. No
// compensation is attempted here; operators must sweep orphans out of band.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/filevault/internal/crypto"
	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/internal/logger"
	"github.com/rise-and-shine/filevault/internal/repository"
	"github.com/rise-and-shine/filevault/internal/storage"
)

// uploadPreviewExpiry is the validity of presigned URLs issued as part of
// an upload response.
const uploadPreviewExpiry = time.Hour

// Service implements both addressing modes of the file storage workflows.
type Service struct {
	ids    *domain.IDGenerator
	cipher crypto.Provider
	store  storage.Provider
	repo   repository.FileRepository
	log    logger.Logger
}

// New creates the file service.
func New(
	ids *domain.IDGenerator,
	cipher crypto.Provider,
	store storage.Provider,
	repo repository.FileRepository,
	log logger.Logger,
) *Service {
	return &Service{
		ids:    ids,
		cipher: cipher,
		store:  store,
		repo:   repo,
		log:    log.Named("file_service"),
	}
}

// upload runs the shared upload flow: construct and validate the aggregate,
// encrypt when requested, write the object, persist the record.
func (s *Service) upload(ctx context.Context, in UploadInput, sourceType string) (*domain.FileResource, error) {
	encrypted := strings.TrimSpace(in.EncryptionKey) != ""
	if encrypted && !s.cipher.ValidateKey(in.EncryptionKey) {
		return nil, errx.New(
			"encryption key must be the base64 encoding of 32 raw bytes",
			errx.WithCode(crypto.CodeInvalidEncryptionKey),
			errx.WithType(errx.T_Validation),
		)
	}

	contentType := in.ContentType
	if strings.TrimSpace(contentType) == "" {
		contentType = storage.DetectContentType(in.FileName)
	}

	resource, err := domain.CreateFileResource(
		s.ids,
		in.FileName,
		contentType,
		int64(len(in.Data)),
		in.BucketName,
		sourceType,
		encrypted,
	)
	if err != nil {
		return nil, err
	}

	if err := resource.ValidateForUpload(); err != nil {
		return nil, err
	}

	payload := in.Data
	if encrypted {
		payload, err = s.cipher.Encrypt(in.Data, in.EncryptionKey)
		if err != nil {
			return nil, err
		}
	}

	bucket := resource.Location().BucketName()
	if err := s.store.EnsureBucket(ctx, bucket); err != nil {
		return nil, err
	}

	err = s.store.Upload(ctx, bucket, resource.ObjectKey(), payload, int64(len(payload)), contentType)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, resource)
	if err != nil {
		// The object is already written; its record is not. See the
		// package comment on the orphan window.
		s.log.Errorw("metadata save failed after object write",
			"file_id", resource.FileID().String(),
			"object_key", resource.ObjectKey(),
			"error", err,
		)
		return nil, err
	}

	s.log.Infow("file uploaded",
		"file_id", saved.FileID().String(),
		"file_name", saved.Metadata().FileName(),
		"source_type", sourceType,
		"encrypted", encrypted,
	)
	return saved, nil
}

// download runs the shared download flow for a resolved resource.
func (s *Service) download(ctx context.Context, resource *domain.FileResource, key string) (*DownloadResult, error) {
	data, err := s.store.Download(ctx, resource.Location().BucketName(), resource.ObjectKey())
	if err != nil {
		return nil, err
	}

	if resource.RequiresEncryption() {
		if strings.TrimSpace(key) == "" {
			return nil, errx.New(
				"file is encrypted, a decryption key is required",
				errx.WithCode(CodeEncryptionKeyRequired),
				errx.WithType(errx.T_Validation),
				errx.WithDetails(errx.D{"file_id": resource.FileID().String()}),
			)
		}
		data, err = s.cipher.Decrypt(data, key)
		if err != nil {
			return nil, err
		}
	}

	return &DownloadResult{
		Data:     data,
		FileName: resource.Metadata().FileName(),
		FileType: resource.Metadata().FileType(),
	}, nil
}

// remove deletes the stored object first and the metadata record second.
// A failure after the object delete leaves the record pointing at nothing;
// a repository failure leaves no orphaned object but a stale record.
func (s *Service) remove(ctx context.Context, resource *domain.FileResource, deleteRecord func() error) error {
	err := s.store.Delete(ctx, resource.Location().BucketName(), resource.ObjectKey())
	if err != nil {
		return err
	}

	if err := deleteRecord(); err != nil {
		s.log.Errorw("metadata delete failed after object delete",
			"file_id", resource.FileID().String(),
			"object_key", resource.ObjectKey(),
			"error", err,
		)
		return err
	}

	s.log.Infow("file deleted",
		"file_id", resource.FileID().String(),
		"file_url", resource.FileURL(),
	)
	return nil
}

// previewURL presigns a GET URL for an unencrypted resource.
func (s *Service) previewURL(ctx context.Context, resource *domain.FileResource, expiryMinutes int) (string, error) {
	if expiryMinutes <= 0 {
		return "", errx.New(
			"preview expiry must be a positive number of minutes",
			errx.WithCode(CodeInvalidExpiry),
			errx.WithType(errx.T_Validation),
		)
	}

	if resource.RequiresEncryption() {
		return "", errx.New(
			"encrypted files cannot be previewed, use download instead",
			errx.WithCode(CodeEncryptedPreviewForbidden),
			errx.WithType(errx.T_Validation),
			errx.WithDetails(errx.D{"file_id": resource.FileID().String()}),
		)
	}

	return s.store.PresignedGetURL(
		ctx,
		resource.Location().BucketName(),
		resource.ObjectKey(),
		time.Duration(expiryMinutes)*time.Minute,
	)
}

func (s *Service) fileInfo(resource *domain.FileResource, accessPath string) *FileInfo {
	return &FileInfo{
		FileID:      resource.FileID().String(),
		AccessPath:  accessPath,
		FileName:    resource.Metadata().FileName(),
		FileSize:    resource.Metadata().FileSize(),
		FileType:    resource.Metadata().FileType(),
		BucketName:  resource.Location().BucketName(),
		Directory:   resource.Location().Directory(),
		IsEncrypted: resource.Envelope().IsEncrypted(),
		CreatedTime: resource.Metadata().CreatedTime(),
		UpdatedTime: resource.Metadata().UpdatedTime(),
	}
}

func blankAccessKey(what string) error {
	return errx.New(what+" must not be blank",
		errx.WithCode(CodeBlankAccessKey),
		errx.WithType(errx.T_Validation),
	)
}

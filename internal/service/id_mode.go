package service

import (
	"context"
	"strings"

	"github.com/rise-and-shine/filevault/internal/domain"
)

// ID mode addresses files by the opaque generated identifier.

// UploadByID stores a file and returns the identifier as the primary handle.
// When a preview is requested for unencrypted content, the access path is a
// presigned URL instead.
func (s *Service) UploadByID(ctx context.Context, in UploadInput) (*UploadResult, error) {
	saved, err := s.upload(ctx, in, domain.SourceTypeIDUpload)
	if err != nil {
		return nil, err
	}

	accessPath := saved.FileID().String()
	if in.WantPreview && !saved.RequiresEncryption() {
		accessPath, err = s.store.PresignedGetURL(
			ctx,
			saved.Location().BucketName(),
			saved.ObjectKey(),
			uploadPreviewExpiry,
		)
		if err != nil {
			return nil, err
		}
	}

	return &UploadResult{
		FileID:      saved.FileID().String(),
		AccessPath:  accessPath,
		FileName:    saved.Metadata().FileName(),
		FileSize:    saved.Metadata().FileSize(),
		FileType:    saved.Metadata().FileType(),
		IsEncrypted: saved.RequiresEncryption(),
	}, nil
}

// DownloadByID returns the payload for the given identifier, decrypting it
// when the envelope says the file is encrypted.
func (s *Service) DownloadByID(ctx context.Context, fileID, decryptionKey string) (*DownloadResult, error) {
	resource, err := s.resolveByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	return s.download(ctx, resource, decryptionKey)
}

// QueryByID returns the read view of the record for the given identifier.
func (s *Service) QueryByID(ctx context.Context, fileID string) (*FileInfo, error) {
	resource, err := s.resolveByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	return s.fileInfo(resource, resource.FileID().String()), nil
}

// DeleteByID removes the stored object and then the metadata record.
func (s *Service) DeleteByID(ctx context.Context, fileID string) error {
	resource, err := s.resolveByID(ctx, fileID)
	if err != nil {
		return err
	}
	return s.remove(ctx, resource, func() error {
		return s.repo.DeleteByFileID(ctx, resource.FileID())
	})
}

// PreviewURLByID presigns a GET URL for an unencrypted file.
func (s *Service) PreviewURLByID(ctx context.Context, fileID string, expiryMinutes int) (string, error) {
	resource, err := s.resolveByID(ctx, fileID)
	if err != nil {
		return "", err
	}
	return s.previewURL(ctx, resource, expiryMinutes)
}

func (s *Service) resolveByID(ctx context.Context, fileID string) (*domain.FileResource, error) {
	if strings.TrimSpace(fileID) == "" {
		return nil, blankAccessKey("file id")
	}

	id, err := domain.ParseFileID(fileID)
	if err != nil {
		return nil, err
	}

	return s.repo.FindByFileID(ctx, id)
}

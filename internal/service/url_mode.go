package service

import (
	"context"
	"strings"

	"github.com/rise-and-shine/filevault/internal/domain"
)

// URL mode addresses files by the derived access path
// /<bucket>/<directory>/<fileName>.

// UploadByURL stores a file and returns the derived path as the primary
// handle, replaced by a presigned URL when a preview was requested.
func (s *Service) UploadByURL(ctx context.Context, in UploadInput) (*UploadResult, error) {
	saved, err := s.upload(ctx, in, domain.SourceTypeURLUpload)
	if err != nil {
		return nil, err
	}

	accessPath := saved.FileURL()
	if in.WantPreview {
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

// DownloadByURL returns the payload for the given access path, decrypting
// it when the envelope says the file is encrypted.
func (s *Service) DownloadByURL(ctx context.Context, fileURL, decryptionKey string) (*DownloadResult, error) {
	resource, err := s.resolveByURL(ctx, fileURL)
	if err != nil {
		return nil, err
	}
	return s.download(ctx, resource, decryptionKey)
}

// QueryByURL returns the read view of the record for the given access path.
func (s *Service) QueryByURL(ctx context.Context, fileURL string) (*FileInfo, error) {
	resource, err := s.resolveByURL(ctx, fileURL)
	if err != nil {
		return nil, err
	}
	return s.fileInfo(resource, resource.FileURL()), nil
}

// DeleteByURL removes the stored object and then the metadata record.
func (s *Service) DeleteByURL(ctx context.Context, fileURL string) error {
	resource, err := s.resolveByURL(ctx, fileURL)
	if err != nil {
		return err
	}
	return s.remove(ctx, resource, func() error {
		return s.repo.DeleteByFileURL(ctx, resource.FileURL())
	})
}

// PreviewURLByURL presigns a GET URL for an unencrypted file.
func (s *Service) PreviewURLByURL(ctx context.Context, fileURL string, expiryMinutes int) (string, error) {
	resource, err := s.resolveByURL(ctx, fileURL)
	if err != nil {
		return "", err
	}
	return s.previewURL(ctx, resource, expiryMinutes)
}

func (s *Service) resolveByURL(ctx context.Context, fileURL string) (*domain.FileResource, error) {
	if strings.TrimSpace(fileURL) == "" {
		return nil, blankAccessKey("file url")
	}
	return s.repo.FindByFileURL(ctx, fileURL)
}

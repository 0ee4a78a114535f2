// Package handler exposes the file storage operations over HTTP.
//
// Two route groups mirror the two addressing modes: /api/v1/files/uuid
// addresses files by their generated identifier, /api/v1/files addresses
// them by the derived storage path.
package handler

import (
	"fmt"
	"io"
	"net/url"

	"github.com/code19m/errx"
	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/filevault/internal/logger"
	"github.com/rise-and-shine/filevault/internal/service"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

const defaultPreviewExpiryMinutes = 60

// Handler serves the file storage REST API.
type Handler struct {
	svc *service.Service
	log logger.Logger
}

// New creates a Handler backed by the given service.
func New(svc *service.Service, log logger.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.Named("handler"),
	}
}

// RegisterRoutes attaches all API routes to the given router.
func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.health)

	idGroup := r.Group("/api/v1/files/uuid")
	idGroup.Post("/upload", h.uploadByID)
	idGroup.Get("/download", h.downloadByID)
	idGroup.Get("/query", h.queryByID)
	idGroup.Delete("/delete", h.deleteByID)
	idGroup.Get("/preview-url", h.previewURLByID)

	urlGroup := r.Group("/api/v1/files")
	urlGroup.Post("/upload-by-url", h.uploadByURL)
	urlGroup.Get("/download-by-url", h.downloadByURL)
	urlGroup.Get("/query-by-url", h.queryByURL)
	urlGroup.Delete("/delete-by-url", h.deleteByURL)
	urlGroup.Post("/preview-url", h.previewURLByURL)
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "up"})
}

// readUploadInput extracts the multipart file part and the common upload form
// fields. keyParam names the form field carrying the optional encryption key,
// which differs between the two addressing modes.
func (h *Handler) readUploadInput(c *fiber.Ctx, keyParam string) (service.UploadInput, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return service.UploadInput{}, errx.Wrap(err,
			errx.WithCode(CodeMissingFilePart),
			errx.WithType(errx.T_Validation),
		)
	}

	part, err := fh.Open()
	if err != nil {
		return service.UploadInput{}, errx.Wrap(err,
			errx.WithCode(CodeUnreadableFilePart),
			errx.WithType(errx.T_Validation),
		)
	}
	defer part.Close() //nolint:errcheck // read-only handle

	data, err := io.ReadAll(part)
	if err != nil {
		return service.UploadInput{}, errx.Wrap(err,
			errx.WithCode(CodeUnreadableFilePart),
			errx.WithType(errx.T_Validation),
		)
	}

	return service.UploadInput{
		Data:          data,
		FileName:      fh.Filename,
		ContentType:   fh.Header.Get(fiber.HeaderContentType),
		BucketName:    c.FormValue("bucketName"),
		EncryptionKey: c.FormValue(keyParam),
		WantPreview:   cast.ToBool(c.FormValue("needPreview")),
	}, nil
}

// expiryMinutes reads the expiryMinutes query parameter, falling back to one hour.
func expiryMinutes(c *fiber.Ctx) int {
	raw := c.Query("expiryMinutes")
	return lo.Ternary(raw == "", defaultPreviewExpiryMinutes, cast.ToInt(raw))
}

// sendDownload writes the payload with attachment headers. The file name is
// percent-encoded per RFC 5987 so non-ASCII names survive the header.
func sendDownload(c *fiber.Ctx, res *service.DownloadResult) error {
	c.Set(fiber.HeaderContentType, res.FileType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename*=UTF-8''%s`, url.PathEscape(res.FileName)))
	return c.Send(res.Data)
}

package storage

import (
	"path/filepath"
	"strings"
)

// MIME content types for the file formats the service accepts.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOC  = "application/msword"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeText = "text/plain"
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"

	ContentTypeOctetStream = "application/octet-stream"
)

var contentTypeByExt = map[string]string{
	".pdf":  ContentTypePDF,
	".doc":  ContentTypeDOC,
	".docx": ContentTypeDOCX,
	".txt":  ContentTypeText,
	".jpg":  ContentTypeJPEG,
	".jpeg": ContentTypeJPEG,
	".png":  ContentTypePNG,
}

// DetectContentType maps a file name extension to its MIME type, falling
// back to application/octet-stream for unknown extensions.
func DetectContentType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ct, ok := contentTypeByExt[ext]; ok {
		return ct
	}
	return ContentTypeOctetStream
}

package handler

import (
	"time"

	"github.com/rise-and-shine/filevault/internal/service"
)

// apiResponse is the envelope for successful responses.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func okResponse(message string, data any) apiResponse {
	return apiResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

type uploadResponse struct {
	FileID      string `json:"file_id"`
	AccessPath  string `json:"access_path"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	FileType    string `json:"file_type"`
	IsEncrypted bool   `json:"is_encrypted"`
}

func uploadResponseFrom(res *service.UploadResult) uploadResponse {
	return uploadResponse{
		FileID:      res.FileID,
		AccessPath:  res.AccessPath,
		FileName:    res.FileName,
		FileSize:    res.FileSize,
		FileType:    res.FileType,
		IsEncrypted: res.IsEncrypted,
	}
}

type fileInfoResponse struct {
	FileID      string    `json:"file_id"`
	AccessPath  string    `json:"access_path"`
	FileName    string    `json:"file_name"`
	FileSize    int64     `json:"file_size"`
	FileType    string    `json:"file_type"`
	BucketName  string    `json:"bucket_name"`
	Directory   string    `json:"directory"`
	IsEncrypted bool      `json:"is_encrypted"`
	CreatedTime time.Time `json:"created_time"`
	UpdatedTime time.Time `json:"updated_time"`
}

func fileInfoResponseFrom(info *service.FileInfo) fileInfoResponse {
	return fileInfoResponse{
		FileID:      info.FileID,
		AccessPath:  info.AccessPath,
		FileName:    info.FileName,
		FileSize:    info.FileSize,
		FileType:    info.FileType,
		BucketName:  info.BucketName,
		Directory:   info.Directory,
		IsEncrypted: info.IsEncrypted,
		CreatedTime: info.CreatedTime,
		UpdatedTime: info.UpdatedTime,
	}
}

type previewURLResponse struct {
	PreviewURL    string `json:"preview_url"`
	ExpiryMinutes int    `json:"expiry_minutes"`
}

// Package storage implements the file upload collaborator: it turns an
// uploaded document or image into a durable {url, name} pair for works and
// cover images. Cloudinary when configured, local disk otherwise.
package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// UploadResult contains the result of a file upload.
type UploadResult struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// Uploader defines the interface for file storage operations.
type Uploader interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*UploadResult, error)
}

// Accepted upload extensions: the document formats works are published in,
// plus the image formats used for covers and avatars.
var allowedExtensions = map[string]bool{
	".docx": true,
	".pdf":  true,
	".pptx": true,
	".html": true,
	".txt":  true,
	".md":   true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

const maxFileSize = 25 * 1024 * 1024 // 25MB

// ErrFileTooLarge is returned for uploads over the size limit.
var ErrFileTooLarge = fmt.Errorf("file size exceeds %d bytes", maxFileSize)

// ErrInvalidExtension is returned for file types outside the accepted set.
var ErrInvalidExtension = fmt.Errorf("file extension not accepted")

func validate(file *multipart.FileHeader) error {
	if file.Size > maxFileSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return ErrInvalidExtension
	}
	return nil
}

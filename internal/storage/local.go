package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalUploader implements Uploader on the local filesystem. Files land in
// Dir and are served back under /uploads/; meant for credential-free runs,
// not multi-node deployments.
type LocalUploader struct {
	dir    string
	logger *zap.Logger
}

// NewLocalUploader creates the upload directory if needed.
func NewLocalUploader(dir string, logger *zap.Logger) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %s: %w", dir, err)
	}
	return &LocalUploader{dir: dir, logger: logger}, nil
}

// Dir returns the directory uploads are written to.
func (u *LocalUploader) Dir() string { return u.dir }

// Upload validates the file and copies it into the upload directory under a
// collision-free name.
func (u *LocalUploader) Upload(ctx context.Context, file *multipart.FileHeader) (*UploadResult, error) {
	if err := validate(file); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	stored := uuid.NewString() + "_" + filepath.Base(file.Filename)
	dst, err := os.Create(filepath.Join(u.dir, stored))
	if err != nil {
		return nil, fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("writing upload: %w", err)
	}

	u.logger.Info("file stored locally", zap.String("file", stored))
	return &UploadResult{URL: "/uploads/" + stored, Name: file.Filename}, nil
}

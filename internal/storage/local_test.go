package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func multipartFile(t *testing.T, name, contents string) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestLocalUploaderStoresFile(t *testing.T) {
	dir := t.TempDir()
	up, err := NewLocalUploader(dir, zap.NewNop())
	require.NoError(t, err)

	res, err := up.Upload(context.Background(), multipartFile(t, "chapter.md", "# One"))
	require.NoError(t, err)
	assert.Equal(t, "chapter.md", res.Name)
	require.True(t, strings.HasPrefix(res.URL, "/uploads/"))

	stored := strings.TrimPrefix(res.URL, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, stored))
	require.NoError(t, err)
	assert.Equal(t, "# One", string(data))
}

func TestLocalUploaderRejectsUnknownExtension(t *testing.T) {
	up, err := NewLocalUploader(t.TempDir(), zap.NewNop())
	require.NoError(t, err)

	_, err = up.Upload(context.Background(), multipartFile(t, "malware.exe", "nope"))
	assert.ErrorIs(t, err, ErrInvalidExtension)
}

package files_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KarlovS28/uchettest/internal/files"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader the way an HTTP upload would.
func fileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSavePhoto(t *testing.T) {
	store, err := files.NewStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.SavePhoto(fileHeader(t, "портрет.jpg", "image/jpeg", "jpeg-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/uploads/photos/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))
	// The stored name is random, not the original
	assert.NotContains(t, path, "портрет")

	onDisk := filepath.Join(store.BaseDir(), "photos", filepath.Base(path))
	content, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))
}

func TestSavePhotoRejectsNonImages(t *testing.T) {
	store, err := files.NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.SavePhoto(fileHeader(t, "резюме.pdf", "application/pdf", "%PDF"))
	assert.ErrorIs(t, err, files.ErrUnsupportedType)
}

func TestSaveDocumentTypes(t *testing.T) {
	store, err := files.NewStore(t.TempDir())
	require.NoError(t, err)

	for _, contentType := range []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"image/png",
	} {
		_, err := store.SaveDocument(fileHeader(t, "файл.bin", contentType, "data"))
		assert.NoError(t, err, contentType)
	}

	_, err = store.SaveDocument(fileHeader(t, "архив.zip", "application/zip", "PK"))
	assert.ErrorIs(t, err, files.ErrUnsupportedType)
}

func TestRemove(t *testing.T) {
	store, err := files.NewStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.SaveDocument(fileHeader(t, "акт.pdf", "application/pdf", "%PDF"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	_, statErr := os.Stat(filepath.Join(store.BaseDir(), "documents", filepath.Base(path)))
	assert.True(t, os.IsNotExist(statErr))

	// Removing twice, or removing a foreign path, is a no-op
	assert.NoError(t, store.Remove(path))
	assert.NoError(t, store.Remove("/etc/passwd"))
}

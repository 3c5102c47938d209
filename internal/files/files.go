package files

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadSize caps a single uploaded file at 10 MB.
const MaxUploadSize = 10 << 20

// Upload validation errors, mapped to 400 by the handlers.
var (
	ErrFileTooLarge    = errors.New("file exceeds the 10 MB limit")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// documentTypes are the declared content types accepted for document uploads.
// Photos additionally accept any image/* type.
var documentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
}

// Store saves uploaded files on disk under a base directory with photos and
// documents kept apart. Stored names are random; the original name survives
// only in the database row.
type Store struct {
	baseDir string
}

// NewStore creates the upload directory layout.
func NewStore(baseDir string) (*Store, error) {
	for _, sub := range []string{"photos", "documents"} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &Store{baseDir: baseDir}, nil
}

// BaseDir returns the root of the upload layout, for static serving.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// SavePhoto stores an image upload and returns its public path.
func (s *Store) SavePhoto(fh *multipart.FileHeader) (string, error) {
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrUnsupportedType
	}
	return s.save(fh, "photos")
}

// SaveDocument stores a document upload and returns its public path. Accepted
// types are pdf, word, excel and images.
func (s *Store) SaveDocument(fh *multipart.FileHeader) (string, error) {
	contentType := fh.Header.Get("Content-Type")
	if _, ok := documentTypes[contentType]; !ok && !strings.HasPrefix(contentType, "image/") {
		return "", ErrUnsupportedType
	}
	return s.save(fh, "documents")
}

// Remove deletes the stored file behind a public path. Unknown paths are a
// no-op.
func (s *Store) Remove(publicPath string) error {
	rel, ok := strings.CutPrefix(publicPath, "/uploads/")
	if !ok {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) save(fh *multipart.FileHeader, sub string) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(s.baseDir, sub, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/uploads/" + sub + "/" + name, nil
}

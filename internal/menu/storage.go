package menu

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/config"
)

// ImageStore keeps uploaded item images on an afero filesystem, which lets
// tests run against an in-memory fs.
type ImageStore struct {
	fs      afero.Fs
	root    string
	baseURL string
	log     *zap.Logger
}

func NewImageStore(config *config.StorageConfig, log *zap.Logger) *ImageStore {
	return newImageStoreWithFs(afero.NewOsFs(), config, log)
}

func newImageStoreWithFs(fs afero.Fs, config *config.StorageConfig, log *zap.Logger) *ImageStore {
	return &ImageStore{
		fs:      fs,
		root:    config.ImageRoot,
		baseURL: strings.TrimRight(config.PublicBaseURL, "/"),
		log:     log,
	}
}

// Save stores an uploaded image under a fresh uuid object name and returns
// the object path plus its public URL.
func (s *ImageStore) Save(r io.Reader, ext string) (objectPath, url string, err error) {
	if ext == "" {
		ext = ".bin"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	objectPath = path.Join("menu-items", uuid.NewString()+strings.ToLower(ext))
	fullPath := filepath.Join(s.root, filepath.FromSlash(objectPath))

	if err := s.fs.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", "", fmt.Errorf("failed to prepare image directory: %w", err)
	}

	if err := afero.WriteReader(s.fs, fullPath, r); err != nil {
		return "", "", fmt.Errorf("failed to store image: %w", err)
	}

	return objectPath, s.baseURL + "/" + objectPath, nil
}

// Delete removes a stored object. Failures are logged and swallowed; a
// stale file must never fail the caller's primary operation.
func (s *ImageStore) Delete(objectPath string) {
	if objectPath == "" {
		return
	}

	fullPath := filepath.Join(s.root, filepath.FromSlash(objectPath))
	if err := s.fs.Remove(fullPath); err != nil {
		s.log.Warn("failed to delete stored image",
			zap.String("objectPath", objectPath),
			zap.Error(err))
	}
}

// Exists reports whether an object is still present; used by tests and the
// admin dashboard's storage audit.
func (s *ImageStore) Exists(objectPath string) bool {
	fullPath := filepath.Join(s.root, filepath.FromSlash(objectPath))
	ok, err := afero.Exists(s.fs, fullPath)
	return err == nil && ok
}

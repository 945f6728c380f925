// Package images stores uploaded post images on disk and removes them when a
// post goes away.
package images

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Store struct {
	Dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload dir")
	}
	return &Store{Dir: dir}, nil
}

// Save writes the uploaded file under a fresh uuid-based name and returns the
// path clients use as imageUrl.
func (s *Store) Save(src io.Reader, origName string) (string, error) {
	name := uuid.New().String() + filepath.Ext(origName)
	path := filepath.Join(s.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "create image file")
	}
	defer f.Close()

	if _, err := io.Copy(f, src); err != nil {
		os.Remove(path)
		return "", errors.Wrap(err, "write image file")
	}
	return path, nil
}

// Clear deletes the backing file. Callers treat this as fire-and-forget; a
// failure is logged, never surfaced.
func (s *Store) Clear(path string) {
	// Refuse anything that escapes the upload dir.
	clean := filepath.Clean(path)
	if strings.Contains(clean, "..") || !strings.HasPrefix(clean, filepath.Clean(s.Dir)+string(filepath.Separator)) {
		log.Printf("images: refusing to clear %q", path)
		return
	}
	if err := os.Remove(clean); err != nil && !os.IsNotExist(err) {
		log.Printf("images: clear %q: %v", path, err)
	}
}

// Package media keeps uploaded feed item images on local disk
package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
)

// ErrUnsupported returned for files that don't look like images
var ErrUnsupported = errors.New("unsupported image type")

// ErrTooLarge returned for files over the size limit
var ErrTooLarge = errors.New("image is too large")

var allowedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

// Store saves images under a directory with generated unique names
type Store struct {
	dir     string
	maxSize int64
}

// NewStore makes a store rooted at dir, creating it if needed
func NewStore(dir string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create media dir %s: %w", dir, err)
	}
	return &Store{dir: dir, maxSize: maxSize}, nil
}

// Dir returns the root directory
func (s *Store) Dir() string {
	return s.dir
}

// Save writes r as a new image, the extension is taken from the original file name.
// Returns the stored name to be referenced from feed items.
func (s *Store) Save(r io.Reader, origName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(origName))
	if !allowedExt[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, origName)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640) //nolint:gosec // name is generated
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	src := r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1)
	}
	n, err := io.Copy(fh, src)
	if closeErr := fh.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err == nil && s.maxSize > 0 && n > s.maxSize {
		err = fmt.Errorf("%w, limit is %d bytes", ErrTooLarge, s.maxSize)
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			lgr.Printf("[WARN] can't remove partial image %s: %v", path, rmErr)
		}
		return "", fmt.Errorf("save image: %w", err)
	}

	lgr.Printf("[DEBUG] saved image %s (%d bytes) from %q", name, n, origName)
	return name, nil
}

// Remove deletes a stored image, missing files are ignored
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	if name != filepath.Base(name) {
		return fmt.Errorf("invalid image name %q", name)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove image %s: %w", name, err)
	}
	return nil
}

// File is a stored image with its modification time
type File struct {
	Name    string
	ModTime time.Time
}

// List returns all stored images, subdirectories and files with foreign extensions are skipped
func (s *Store) List() ([]File, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read media dir %s: %w", s.dir, err)
	}
	res := make([]File, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !allowedExt[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue // removed since ReadDir
			}
			return nil, fmt.Errorf("stat image %s: %w", e.Name(), err)
		}
		res = append(res, File{Name: e.Name(), ModTime: info.ModTime()})
	}
	return res, nil
}

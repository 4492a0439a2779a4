// Package storage provides the filesystem blob store holding at most one
// image per post. Files live under a configured base directory as
// "{id}.png"; there is no transactional link to the post records.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ImageStore reads and writes per-post image files under a base directory.
type ImageStore struct {
	baseDir string
}

// NewImageStore creates the store and ensures the base directory exists.
func NewImageStore(baseDir string) (*ImageStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create images directory: %w", err)
	}
	return &ImageStore{baseDir: baseDir}, nil
}

func (s *ImageStore) path(postID int) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("%d.png", postID))
}

// Save writes the image for the given post, fully replacing any prior one.
func (s *ImageStore) Save(postID int, r io.Reader) error {
	out, err := os.Create(s.path(postID))
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		_ = os.Remove(s.path(postID))
		return fmt.Errorf("write image file: %w", err)
	}
	return out.Close()
}

// Read returns the raw image bytes for the given post.
// The second return value reports whether the image exists.
func (s *ImageStore) Read(postID int) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(postID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read image file: %w", err)
	}
	return b, true, nil
}

// Exists reports whether an image is stored for the given post.
func (s *ImageStore) Exists(postID int) bool {
	_, err := os.Stat(s.path(postID))
	return err == nil
}

// Remove deletes the image for the given post.
// The return value reports whether a file was actually removed.
func (s *ImageStore) Remove(postID int) (bool, error) {
	err := os.Remove(s.path(postID))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("remove image file: %w", err)
	}
	return true, nil
}

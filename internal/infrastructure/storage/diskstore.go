// Package storage persists uploaded files on the local filesystem under a
// configured root directory.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Root() string {
	return s.root
}

// GenerateFilename builds a collision-resistant stored name from the ticket
// ID, a random UUID, a short random suffix, and the lowercased original
// extension. The original client name never reaches the filesystem.
func (s *DiskStore) GenerateFilename(ticketID uint, originalName string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
	if ext == "" {
		return "", fmt.Errorf("file name has no extension")
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate random suffix: %w", err)
	}

	return fmt.Sprintf("%d_%s_%s.%s", ticketID, uuid.NewString(), hex.EncodeToString(suffix), ext), nil
}

// Save writes the reader's content to the named file inside the root and
// returns the relative path recorded in the database.
func (s *DiskStore) Save(filename string, src io.Reader) (string, error) {
	if filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid file name: %s", filename)
	}

	fullPath := filepath.Join(s.root, filename)
	dst, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filename, nil
}

func (s *DiskStore) Exists(filename string) bool {
	_, err := os.Stat(filepath.Join(s.root, filename))
	return err == nil
}

// Remove deletes a stored file. Used to clean up when the surrounding
// transaction rolls back.
func (s *DiskStore) Remove(filename string) error {
	if filepath.Base(filename) != filename {
		return fmt.Errorf("invalid file name: %s", filename)
	}
	if err := os.Remove(filepath.Join(s.root, filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

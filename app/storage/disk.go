// Package storage is the blob side of an upload: opaque bytes on disk keyed
// by stored name. Metadata stays in the database.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Disk struct{ root string }

func NewDisk(root string) (*Disk, error) {
	if root == "" {
		root = "uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Disk{root: root}, nil
}

// Save streams src into the store and returns the generated stored name and
// the byte count. The write goes to a temp file first so a failed upload
// never leaves a partial blob under its final name.
func (d *Disk) Save(originalName string, src io.Reader) (string, int64, error) {
	storedName := uuid.NewString() + "_" + filepath.Base(originalName)
	finalPath := filepath.Join(d.root, storedName)
	tempPath := finalPath + ".part"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", 0, fmt.Errorf("create temp file: %w", err)
	}
	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("write blob: %w", err)
	}
	if err := os.Rename(tempPath, finalPath); err != nil {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("finalize blob: %w", err)
	}
	return storedName, n, nil
}

func (d *Disk) Open(storedName string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(d.root, filepath.Base(storedName)))
}

func (d *Disk) Delete(storedName string) error {
	err := os.Remove(filepath.Join(d.root, filepath.Base(storedName)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

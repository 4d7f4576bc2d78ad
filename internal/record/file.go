package record

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore is a filesystem-based implementation of the Store interface.
// Each key is stored as a single file under the root directory:
//
//	<root>/
//	  pack-store.json
//	  travel-essentials-store.json
type FileStore struct {
	root string
}

// NewFileStore creates a new file store rooted at the given directory,
// creating it if necessary.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{root: root}, nil
}

// path returns the file path for a key.
func (f *FileStore) path(key string) string {
	return filepath.Join(f.root, key+".json")
}

// Load reads the record file for key. A missing file is not an error.
func (f *FileStore) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading record %q: %w", key, err)
	}
	return data, true, nil
}

// Save writes the record atomically via a temp file and rename, so a crash
// mid-write never leaves a truncated record behind.
func (f *FileStore) Save(key string, data []byte) error {
	destPath := f.path(key)

	tmpFile, err := os.CreateTemp(f.root, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing record %q: %w", key, err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing record %q: %w", key, err)
	}

	return nil
}

// Close is a no-op for the file store.
func (f *FileStore) Close() error { return nil }

// Compile-time check that FileStore implements the Store interface
var _ Store = (*FileStore)(nil)

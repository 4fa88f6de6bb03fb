package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one file per key under a data directory. It is the
// persistent-scope backend for a single-user client installation.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir. The directory is created on
// first write, not here, so a read-only start still works.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (f *FileStore) path(key string) string {
	// Keys are fixed identifiers, but never trust them as raw paths.
	safe := strings.NewReplacer("/", "_", string(filepath.Separator), "_", "..", "_").Replace(key)
	return filepath.Join(f.dir, safe+".json")
}

func (f *FileStore) Get(key string) ([]byte, bool) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		return nil, false
	}
	return raw, true
}

func (f *FileStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	// Write to a temp file and rename so readers never see a torn snapshot.
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(key))
}

func (f *FileStore) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

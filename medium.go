package ledger

import (
	"fmt"
	"os"
	"path/filepath"
)

// Medium is the persistence medium: a key-value text store addressed by a
// fixed key, holding the full store serialized as JSON. Reads either return
// content or report absence; anything unreadable is an error the store
// recovers from at startup.
type Medium interface {
	// Read returns the content under key, or ok=false when absent.
	Read(key string) (data []byte, ok bool, err error)
	// Write replaces the content under key. It must be atomic from the
	// caller's point of view: a failed write leaves the old content.
	Write(key string, data []byte) error
}

// FileMedium persists each key as a JSON file in a directory. Writes go to
// a temporary file first and replace the target with a rename, so a crash
// mid-write cannot corrupt the store.
type FileMedium struct {
	dir string
}

// NewFileMedium returns a medium rooted at dir. The directory is created
// on first write.
func NewFileMedium(dir string) *FileMedium {
	return &FileMedium{dir: dir}
}

func (m *FileMedium) path(key string) string {
	return filepath.Join(m.dir, key+".json")
}

// Read implements Medium.
func (m *FileMedium) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(m.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: read %q: %v", ErrPersistenceRead, m.path(key), err)
	}
	return data, true, nil
}

// Write implements Medium.
func (m *FileMedium) Write(key string, data []byte) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %q: %v", ErrPersistenceWrite, m.dir, err)
	}
	target := m.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: write %q: %v", ErrPersistenceWrite, tmp, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: replace %q: %v", ErrPersistenceWrite, target, err)
	}
	return nil
}

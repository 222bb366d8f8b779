package todo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileRepository stores the snapshot envelope as a JSON file.
// No caching - always reads/writes the file. A lock file prevents races
// between processes sharing a workspace.
type FileRepository struct {
	filePath string
	lock     *flock.Flock
}

// NewFileRepository creates a file repository under <workspaceDir>/.todo
func NewFileRepository(workspaceDir string) (*FileRepository, error) {
	filePath := filepath.Join(dataDir(workspaceDir), StorageKey+".json")

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create .todo directory: %w", err)
	}

	return &FileRepository{
		filePath: filePath,
		lock:     flock.New(filePath + ".lock"),
	}, nil
}

// Path returns the snapshot file location
func (r *FileRepository) Path() string {
	return r.filePath
}

// Load reads the snapshot from disk
// Lock → Read → Decode → Unlock
func (r *FileRepository) Load() (Snapshot, error) {
	var snap Snapshot

	err := r.withFileLock(func() error {
		data, err := os.ReadFile(r.filePath)
		if os.IsNotExist(err) {
			return ErrNoSnapshot
		}
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		if len(data) == 0 {
			return ErrNoSnapshot
		}

		snap, err = DecodeSnapshot(data)
		return err
	})
	return snap, err
}

// Save replaces the snapshot on disk. The previous snapshot survives a
// failed write.
// Lock → Encode → Write temp → Rename → Unlock
func (r *FileRepository) Save(snap Snapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	return r.withFileLock(func() error {
		tmpPath := r.filePath + ".tmp"
		if err := writeFileSync(tmpPath, data); err != nil {
			os.Remove(tmpPath)
			return err
		}
		if err := os.Rename(tmpPath, r.filePath); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to replace file: %w", err)
		}
		return nil
	})
}

func writeFileSync(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	return file.Close()
}

// withFileLock executes fn with the lock file held exclusively
func (r *FileRepository) withFileLock(fn func() error) error {
	if err := r.lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock file: %w", err)
	}
	defer r.lock.Unlock()

	return fn()
}

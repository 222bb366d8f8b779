package todo

import (
	"fmt"
	"path/filepath"
)

// Repository is a persistence backend for store snapshots
type Repository interface {
	// Load returns the stored snapshot, or ErrNoSnapshot if none was saved
	Load() (Snapshot, error)
	// Save overwrites the stored snapshot
	Save(Snapshot) error
}

// Backend names a Repository implementation
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// ParseBackend returns the backend named by s
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendFile, BackendSQLite, BackendMemory:
		return b, nil
	}
	return "", fmt.Errorf("unknown storage backend %q (use file, sqlite or memory)", s)
}

// dataDir is where every backend keeps its files inside a workspace
func dataDir(workspaceDir string) string {
	return filepath.Join(workspaceDir, ".todo")
}

// OpenRepository opens the backend's repository inside workspaceDir.
// The returned close function releases backend resources.
func OpenRepository(workspaceDir string, backend Backend) (Repository, func() error, error) {
	noop := func() error { return nil }

	switch backend {
	case BackendFile, "":
		repo, err := NewFileRepository(workspaceDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file repository: %w", err)
		}
		return repo, noop, nil
	case BackendSQLite:
		repo, err := NewSQLiteRepository(workspaceDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create sqlite repository: %w", err)
		}
		return repo, repo.Close, nil
	case BackendMemory:
		return NewMemoryRepository(), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", backend)
}

// NewStoreWithPersistence creates a store hydrated from, and saving to, the
// chosen backend in workspaceDir. Call the returned close function when done.
func NewStoreWithPersistence(workspaceDir string, backend Backend, opts ...StoreOption) (*Store, func() error, error) {
	repo, closeRepo, err := OpenRepository(workspaceDir, backend)
	if err != nil {
		return nil, nil, err
	}
	return NewStore(repo, opts...), closeRepo, nil
}

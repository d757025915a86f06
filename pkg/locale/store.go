package locale

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// MemoryStore keeps the locale choice in process memory. Useful for tests
// and for processes whose locale should reset on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	locale string
	set    bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the stored locale, or a miss when nothing was stored yet.
func (s *MemoryStore) Get(_ context.Context) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale, s.set
}

// Set stores the locale. Never fails.
func (s *MemoryStore) Set(_ context.Context, locale string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = locale
	s.set = true
	return true
}

// FileStore persists the locale choice to a single file, the process-local
// analog of browser storage. Filesystem failures are swallowed: Get
// reports a miss and Set reports false.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path. Parent directories are
// created on first Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get reads the stored locale. A missing or unreadable file is a miss.
func (s *FileStore) Get(_ context.Context) (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	locale := strings.TrimSpace(string(data))
	if locale == "" {
		return "", false
	}
	return locale, true
}

// Set writes the locale with owner-only permissions.
func (s *FileStore) Set(_ context.Context, locale string) bool {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return false
		}
	}
	return os.WriteFile(s.path, []byte(locale+"\n"), 0o600) == nil
}

package testutil

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/dataset"
)

// StubSource is an in-memory dataset.Source. Unknown names read as fs.ErrNotExist.
type StubSource struct {
	mu    sync.Mutex
	data  map[dataset.Name][]byte
	errs  map[dataset.Name]error
	reads map[dataset.Name]int
}

// NewStubSource returns an empty StubSource.
func NewStubSource() *StubSource {
	return &StubSource{
		data:  make(map[dataset.Name][]byte),
		errs:  make(map[dataset.Name]error),
		reads: make(map[dataset.Name]int),
	}
}

// With sets the raw body served for name.
func (s *StubSource) With(name dataset.Name, body string) *StubSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = []byte(body)
	delete(s.errs, name)
	return s
}

// Failing makes every read of name return err.
func (s *StubSource) Failing(name dataset.Name, err error) *StubSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[name] = err
	return s
}

// Read implements dataset.Source.
func (s *StubSource) Read(ctx context.Context, name dataset.Name) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads[name]++
	if err, ok := s.errs[name]; ok {
		return nil, err
	}
	raw, ok := s.data[name]
	if !ok {
		return nil, fmt.Errorf("dataset %s: %w", name, fs.ErrNotExist)
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// Reads returns how many times name was read.
func (s *StubSource) Reads(name dataset.Name) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads[name]
}

// WriteDataset writes body to {dir}/{name}.json, failing the test on error.
func WriteDataset(t *testing.T, dir string, name dataset.Name, body string) string {
	t.Helper()
	path := filepath.Join(dir, string(name)+".json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write dataset %s: %v", name, err)
	}
	return path
}

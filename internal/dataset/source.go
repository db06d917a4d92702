// Package dataset serves the bundled JSON datasets (games, stadiums, seed players).
package dataset

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Name identifies a bundled dataset.
type Name string

const (
	Games    Name = "games"
	Stadiums Name = "stadiums"
	Players  Name = "players"
)

//go:embed data/*.json
var bundled embed.FS

// Source reads the raw bytes of a named dataset.
type Source interface {
	Read(ctx context.Context, name Name) ([]byte, error)
}

// New returns the bundled datasets, overlaid by dir when it is set.
func New(dir string) Source {
	if dir == "" {
		return Bundled()
	}
	return &overlaySource{primary: NewDirSource(dir), fallback: Bundled()}
}

// EmbeddedSource reads datasets compiled into the binary.
type EmbeddedSource struct {
	fsys fs.FS
}

// Bundled returns the datasets shipped with the service.
func Bundled() *EmbeddedSource {
	return &EmbeddedSource{fsys: bundled}
}

// Read returns the bundled bytes for name.
func (s *EmbeddedSource) Read(ctx context.Context, name Name) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(s.fsys, path.Join("data", string(name)+".json"))
}

// DirSource reads datasets from the filesystem.
type DirSource struct {
	basePath string
}

// NewDirSource constructs a filesystem-backed source rooted at basePath.
func NewDirSource(basePath string) *DirSource {
	return &DirSource{basePath: basePath}
}

// Read loads {basePath}/{name}.json.
func (s *DirSource) Read(ctx context.Context, name Name) ([]byte, error) {
	if s == nil {
		return nil, errors.New("dataset directory not configured")
	}
	if name == "" {
		return nil, errors.New("dataset name required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(s.basePath, string(name)+".json"))
}

// overlaySource prefers primary and falls back only when the dataset file does not exist there.
type overlaySource struct {
	primary  Source
	fallback Source
}

func (s *overlaySource) Read(ctx context.Context, name Name) ([]byte, error) {
	raw, err := s.primary.Read(ctx, name)
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s override: %w", name, err)
	}
	return s.fallback.Read(ctx, name)
}

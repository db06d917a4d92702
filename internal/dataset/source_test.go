package dataset

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/stadiums"
	"github.com/preston-bernstein/nba-stats-service/internal/validate"
)

func writeDataset(t *testing.T, dir string, name Name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, string(name)+".json"), []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write %s dataset: %v", name, err)
	}
}

func TestBundledDatasetsAreWellFormed(t *testing.T) {
	src := Bundled()
	ctx := context.Background()

	raw, err := src.Read(ctx, Stadiums)
	if err != nil {
		t.Fatalf("failed to read bundled stadiums: %v", err)
	}
	list, err := validate.CollectionShape(raw, stadiums.CollectionField)
	if err != nil {
		t.Fatalf("bundled stadiums malformed: %v", err)
	}
	if len(list.Array()) == 0 {
		t.Fatalf("expected bundled stadiums")
	}

	raw, err = src.Read(ctx, Games)
	if err != nil {
		t.Fatalf("failed to read bundled games: %v", err)
	}
	if _, err := validate.Sequence(raw); err != nil {
		t.Fatalf("bundled games malformed: %v", err)
	}
}

func TestBundledUnknownDataset(t *testing.T) {
	if _, err := Bundled().Read(context.Background(), Name("teams")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestDirSourceRead(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, Games, `[{"id":"g1"}]`)

	src := NewDirSource(dir)
	raw, err := src.Read(context.Background(), Games)
	if err != nil {
		t.Fatalf("failed to read games: %v", err)
	}
	if string(raw) != `[{"id":"g1"}]` {
		t.Fatalf("unexpected games payload %s", raw)
	}
}

func TestDirSourceErrors(t *testing.T) {
	src := NewDirSource(t.TempDir())
	if _, err := src.Read(context.Background(), Games); err == nil {
		t.Fatalf("expected error for missing dataset")
	}
	if _, err := src.Read(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty name")
	}
	var nilSource *DirSource
	if _, err := nilSource.Read(context.Background(), Games); err == nil {
		t.Fatalf("expected error for nil source")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.Read(ctx, Games); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestNewOverlaysDirectoryOnBundled(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, Stadiums, `{"stadiums":[]}`)

	src := New(dir)
	raw, err := src.Read(context.Background(), Stadiums)
	if err != nil {
		t.Fatalf("failed to read override: %v", err)
	}
	if string(raw) != `{"stadiums":[]}` {
		t.Fatalf("expected override payload, got %s", raw)
	}

	// games is not overridden, so the bundled copy is served.
	raw, err = src.Read(context.Background(), Games)
	if err != nil {
		t.Fatalf("failed to read bundled fallback: %v", err)
	}
	if _, err := validate.Sequence(raw); err != nil {
		t.Fatalf("expected bundled games, got %v", err)
	}
}

func TestNewWithoutDirIsBundled(t *testing.T) {
	if _, ok := New("").(*EmbeddedSource); !ok {
		t.Fatalf("expected bundled source when no directory configured")
	}
}

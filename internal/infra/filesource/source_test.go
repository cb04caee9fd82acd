package filesource

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/catcount/internal/domain"
)

func TestOpen_ReadsFile(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "input.txt")
	if err := os.WriteFile(p, []byte("PERSON test\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rc, err := New().Open(p)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "PERSON test\n" {
		t.Fatalf("unexpected content %q", b)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "not_there.txt")

	_, err := New().Open(p)
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindSourceNotFound) {
		t.Fatalf("expected KindSourceNotFound, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestOpen_Directory(t *testing.T) {
	_, err := New().Open(t.TempDir())
	if !domain.IsKind(err, domain.KindSourceNotFound) {
		t.Fatalf("expected KindSourceNotFound for directory, got %v", err)
	}
}

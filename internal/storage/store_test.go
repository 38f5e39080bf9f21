package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestSaveIdentityAllowedExtensions(t *testing.T) {
	s := newStore(t)
	for _, name := range []string{"card.pdf", "card.png", "card.jpg", "card.JPEG"} {
		stored, err := s.SaveIdentity(name, strings.NewReader("data"))
		if err != nil {
			t.Fatalf("SaveIdentity(%q): %v", name, err)
		}
		if _, err := os.Stat(filepath.Join(s.Dir(), stored)); err != nil {
			t.Fatalf("stored file missing: %v", err)
		}
	}
}

func TestSaveIdentityRejectsExtension(t *testing.T) {
	s := newStore(t)
	for _, name := range []string{"card.exe", "card", "card.pdf.sh", "card.gif"} {
		_, err := s.SaveIdentity(name, strings.NewReader("data"))
		if !errors.Is(err, ErrBadExtension) {
			t.Fatalf("SaveIdentity(%q): want ErrBadExtension, got %v", name, err)
		}
	}
	// nothing written on rejection
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("rejected upload left %d files behind", len(entries))
	}
}

func TestSaveIdentitySanitizesName(t *testing.T) {
	s := newStore(t)
	stored, err := s.SaveIdentity("../../etc/pass wd#!.pdf", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("SaveIdentity: %v", err)
	}
	if strings.Contains(stored, "/") || strings.Contains(stored, "..") {
		t.Fatalf("unsafe stored name: %q", stored)
	}
	if !strings.HasSuffix(stored, "pass_wd.pdf") {
		t.Fatalf("unexpected sanitized name: %q", stored)
	}
}

func TestSaveIdentityUniqueNames(t *testing.T) {
	s := newStore(t)
	a, err := s.SaveIdentity("card.pdf", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("SaveIdentity: %v", err)
	}
	b, err := s.SaveIdentity("card.pdf", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("SaveIdentity: %v", err)
	}
	if a == b {
		t.Fatalf("same client filename produced the same stored name %q", a)
	}
}

func TestPathRejectsTraversal(t *testing.T) {
	s := newStore(t)
	for _, name := range []string{"../secret", "a/b.pdf", ""} {
		if _, err := s.Path(name); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Path(%q): want ErrNotFound, got %v", name, err)
		}
	}
}

func TestPathMissingFile(t *testing.T) {
	s := newStore(t)
	if _, err := s.Path("nope.pdf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

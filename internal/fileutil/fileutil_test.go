package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFileVerified(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.png")

	content := []byte("screenshot bytes")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFileVerified(src, dst); err != nil {
		t.Fatalf("CopyFileVerified: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestCopyFileVerifiedMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFileVerified(filepath.Join(dir, "absent.png"), filepath.Join(dir, "dst.png"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestSameContent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	c := filepath.Join(dir, "c.png")

	if err := os.WriteFile(a, []byte("identical"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("identical"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c, []byte("different"), 0o644); err != nil {
		t.Fatal(err)
	}

	same, err := SameContent(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !same {
		t.Fatal("identical files reported as different")
	}

	same, err = SameContent(a, c)
	if err != nil {
		t.Fatal(err)
	}
	if same {
		t.Fatal("different files reported as identical")
	}
}

func TestSameContentSizeShortcut(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")

	if err := os.WriteFile(a, []byte("short"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("much longer body"), 0o644); err != nil {
		t.Fatal(err)
	}

	same, err := SameContent(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if same {
		t.Fatal("files of different sizes reported as identical")
	}
}

package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"snapsort/internal/scanner"
)

func TestScanListsTopLevelFilesOnly(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.png"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "b.txt"), []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "channela", "2024-05")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, "organized.png"), []byte("c"), 0o644); err != nil {
		t.Fatal(err)
	}

	candidates, err := scanner.Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates %v, want 2", len(candidates), candidates)
	}
	for _, c := range candidates {
		if filepath.Dir(c) != root {
			t.Fatalf("candidate %q is not directly in root", c)
		}
	}
}

func TestScanEmptyRoot(t *testing.T) {
	candidates, err := scanner.Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(candidates) != 0 {
		t.Fatalf("expected no candidates, got %v", candidates)
	}
}

func TestScanMissingRoot(t *testing.T) {
	if _, err := scanner.Scan(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestScanDoesNotResurfaceMovedFiles(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "shot.png")
	if err := os.WriteFile(src, []byte("pixels"), 0o644); err != nil {
		t.Fatal(err)
	}

	first, err := scanner.Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 candidate, got %v", first)
	}

	dst := filepath.Join(root, "channela", "shot.png")
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(src, dst); err != nil {
		t.Fatal(err)
	}

	second, err := scanner.Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 0 {
		t.Fatalf("moved file re-surfaced: %v", second)
	}
}

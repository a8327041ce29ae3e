// Package scanner enumerates unorganized candidates at the top level of the
// downloads root.
//
// Subdirectories are already-organized output and are never entered, which
// keeps repeated runs idempotent: a file moved into a channel folder can
// never be surfaced again.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
)

// Scan returns the regular files directly inside root, in enumeration
// order. It does not recurse.
func Scan(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read root directory: %w", err)
	}

	candidates := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		candidates = append(candidates, filepath.Join(root, entry.Name()))
	}
	return candidates, nil
}

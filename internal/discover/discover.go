// Package discover expands input patterns into tab state file paths.
package discover

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultPattern matches the tab state files of the Windows Notepad app for
// every local user.
const DefaultPattern = `C:\Users\*\AppData\Local\Packages\Microsoft.WindowsNotepad_8wekyb3d8bbwe\LocalState\TabState\????????-????-????-????-????????????.bin`

// Expand resolves patterns to paths. Literal paths are returned as given so
// that a missing file surfaces as an open error for that source. Glob
// matches are sorted per pattern; duplicates across patterns are dropped.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		out = append(out, path)
	}
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if !hasMeta(pattern) {
			add(pattern)
			continue
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, match := range matches {
			add(match)
		}
	}
	return out, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[`)
}

// Package discover expands the manifest glob over a directory tree
// and returns the plain list of file paths the scan passes consume.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	kerrors "github.com/kahusec/fluxvet/internal/errors"
)

// DefaultPattern matches SOPS-encrypted manifest files by suffix
// convention, recursively.
const DefaultPattern = "**/*-sops.yml"

// Files returns every regular file under dir matching pattern, sorted
// for stable output. An empty pattern falls back to DefaultPattern.
// No matches is not an error; callers decide how to report an empty
// tree.
func Files(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", kerrors.ErrInvalidPattern, pattern, err)
	}

	var files []string
	for _, m := range matches {
		// Skip directories and irregular files.
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}

	sort.Strings(files)
	return files, nil
}

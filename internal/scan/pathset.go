package scan

import "sort"

// PathSet is a deduplicated, unordered set of file paths. A file
// appears in a set at most once no matter how many documents inside
// it contributed.
type PathSet map[string]struct{}

// Add inserts path into the set.
func (s PathSet) Add(path string) {
	s[path] = struct{}{}
}

// Contains reports whether path is in the set.
func (s PathSet) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Sorted returns the paths in lexical order for stable display.
func (s PathSet) Sorted() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

package scan

import "github.com/kahusec/fluxvet/internal/manifest"

// DuplicateGroups maps a document identity to the set of files
// containing at least one document with that identity.
type DuplicateGroups map[manifest.Identity]PathSet

// CollectDuplicates parses every file in paths and groups files by
// document identity. The result is unfiltered: groups backed by a
// single file are included so tests can assert on raw cardinalities.
// Filtering to actual duplicates is a reporting decision; see
// Duplicated.
func CollectDuplicates(paths []string) (DuplicateGroups, error) {
	groups := DuplicateGroups{}
	for _, path := range paths {
		docs, err := manifest.ParseFile(path)
		if err != nil {
			return nil, err
		}
		for _, d := range docs {
			id := d.Identity()
			if groups[id] == nil {
				groups[id] = PathSet{}
			}
			groups[id].Add(path)
		}
	}
	return groups, nil
}

// Duplicated returns only the groups whose documents appear in two or
// more distinct files.
func (g DuplicateGroups) Duplicated() DuplicateGroups {
	duped := DuplicateGroups{}
	for id, files := range g {
		if len(files) > 1 {
			duped[id] = files
		}
	}
	return duped
}

package scan

import (
	"encoding/json"
	"sort"
)

// reportJSON is the machine-readable shape of a Report. Identities are
// flattened because map keys must be strings in JSON, and all slices
// are sorted for stable output.
type reportJSON struct {
	KMSKeys          map[string][]string `json:"kms_keys"`
	Duplicates       []duplicateJSON     `json:"duplicates"`
	RotationFailures []rotationJSON      `json:"rotation_failures,omitempty"`
}

type duplicateJSON struct {
	Kind      string   `json:"kind"`
	Name      string   `json:"name"`
	Namespace string   `json:"namespace,omitempty"`
	KeyARN    string   `json:"key_arn,omitempty"`
	Files     []string `json:"files"`
}

type rotationJSON struct {
	Path  string `json:"path"`
	Step  string `json:"step"`
	Error string `json:"error"`
}

// MarshalJSON renders the report for the --json output mode.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		KMSKeys:    make(map[string][]string, len(r.KeyUsage)),
		Duplicates: []duplicateJSON{},
	}

	for arn, files := range r.KeyUsage {
		out.KMSKeys[arn] = files.Sorted()
	}

	for id, files := range r.Duplicates {
		out.Duplicates = append(out.Duplicates, duplicateJSON{
			Kind:      id.Kind,
			Name:      id.Name,
			Namespace: id.Namespace,
			KeyARN:    id.KeyARN,
			Files:     files.Sorted(),
		})
	}
	sort.Slice(out.Duplicates, func(i, j int) bool {
		a, b := out.Duplicates[i], out.Duplicates[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Namespace != b.Namespace {
			return a.Namespace < b.Namespace
		}
		return a.KeyARN < b.KeyARN
	})

	for _, f := range r.RotationFailures {
		out.RotationFailures = append(out.RotationFailures, rotationJSON{
			Path:  f.Path,
			Step:  f.Step,
			Error: f.Err.Error(),
		})
	}

	return json.Marshal(out)
}

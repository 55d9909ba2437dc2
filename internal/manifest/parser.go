package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// ParseError reports a file that could not be decoded into documents,
// either because the YAML is malformed or because a document is
// missing a required identity field.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseFile decodes every YAML document in the file at path.
func ParseFile(path string) ([]Document, error) {
	f, err := os.Open(path) // #nosec G304 -- paths come from the user-supplied scan directory.
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse decodes a `---`-separated stream of manifest documents.
// The path is only used for error reporting. A parse failure fails
// the whole file; a document without a sops block is not a failure.
func Parse(r io.Reader, path string) ([]Document, error) {
	dec := yaml.NewDecoder(r)

	var docs []Document
	for {
		var d Document
		if err := dec.Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &ParseError{Path: path, Err: err}
		}
		if err := d.validate(); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		docs = append(docs, d)
	}

	return docs, nil
}

// validate checks the fields required to compute a document identity.
func (d Document) validate() error {
	if d.Kind == "" {
		return errors.New("document is missing required field: kind")
	}
	if d.Meta.Name == "" {
		return errors.New("document is missing required field: metadata.name")
	}
	return nil
}

package scan

import "github.com/kahusec/fluxvet/internal/manifest"

// KeyUsage maps a KMS key ARN to the set of files containing at least
// one document encrypted under that key.
type KeyUsage map[string]PathSet

// CollectKeyUsage parses every file in paths and aggregates key usage
// across the tree. Multiple documents in one file sharing a key add
// the file once (set semantics). Iteration order of the result is not
// meaningful.
func CollectKeyUsage(paths []string) (KeyUsage, error) {
	usage := KeyUsage{}
	for _, path := range paths {
		docs, err := manifest.ParseFile(path)
		if err != nil {
			return nil, err
		}
		for _, d := range docs {
			if !d.Encrypted() {
				continue
			}
			arn := d.KeyARN()
			if usage[arn] == nil {
				usage[arn] = PathSet{}
			}
			usage[arn].Add(path)
		}
	}
	return usage, nil
}

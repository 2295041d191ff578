package brush

import (
	"os"
	"path/filepath"
	"strings"

	errgo "gopkg.in/errgo.v1"
)

// LoadFile reads a pattern from disk. Files ending in .rle are run-length
// encoded; anything else is read as plaintext. The rule is only ever set for
// RLE files. Unnamed patterns are named after the file.
func LoadFile(path string) (*Brush, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errgo.Notef(err, "cannot read pattern")
	}
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.EqualFold(filepath.Ext(path), ".rle") {
		b, rule, err := ParseRLE(string(data))
		if err != nil {
			return nil, "", errgo.WithCausef(err, errgo.Cause(err), "%s", path)
		}
		if b.Name == "" {
			b.Name = name
		}
		return b, rule, nil
	}
	b, err := ParsePlaintext(name, string(data))
	if err != nil {
		return nil, "", errgo.WithCausef(err, errgo.Cause(err), "%s", path)
	}
	return b, "", nil
}

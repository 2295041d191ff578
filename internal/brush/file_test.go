package brush

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	errgo "gopkg.in/errgo.v1"
)

func TestLoadFile(t *testing.T) {
	c := qt.New(t)
	dir := c.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		c.Assert(os.WriteFile(path, []byte(content), 0o644), qt.IsNil)
		return path
	}

	b, rule, err := LoadFile(write("glider.RLE", "x = 3, y = 3, rule = B3/S23\nbo$2bo$3o!\n"))
	c.Assert(err, qt.IsNil)
	c.Assert(rule, qt.Equals, "B3/S23")
	c.Assert(b.Name, qt.Equals, "glider")
	c.Assert(b.Population(), qt.Equals, 5)

	b, rule, err = LoadFile(write("row.cells", "OO.O\n"))
	c.Assert(err, qt.IsNil)
	c.Assert(rule, qt.Equals, "")
	c.Assert(b.Name, qt.Equals, "row")
	c.Assert(b.Width(), qt.Equals, 4)

	_, _, err = LoadFile(write("bad.cells", "OxO\n"))
	c.Assert(errgo.Cause(err), qt.Equals, ErrSyntax)

	_, _, err = LoadFile(filepath.Join(dir, "missing.rle"))
	c.Assert(err, qt.ErrorMatches, "cannot read pattern: .*")
}

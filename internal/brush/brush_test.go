package brush

import (
	"testing"

	qt "github.com/frankban/quicktest"
	errgo "gopkg.in/errgo.v1"

	"lifelab/internal/core"
)

func TestNewValidatesShape(t *testing.T) {
	c := qt.New(t)

	_, err := New("empty", nil)
	c.Assert(errgo.Cause(err), qt.Equals, ErrEmptyPattern)

	_, err = New("ragged", [][]bool{{true, false}, {true}})
	c.Assert(errgo.Cause(err), qt.Equals, ErrRagged)
	c.Assert(err, qt.ErrorMatches, `brush "ragged": column 1 has 1 cells, want 2`)

	b, err := New("ok", [][]bool{{true, false, true}, {false, false, true}})
	c.Assert(err, qt.IsNil)
	c.Assert(b.Width(), qt.Equals, 2)
	c.Assert(b.Height(), qt.Equals, 3)
	c.Assert(b.Size, qt.Equals, core.VI(2, 3))
	c.Assert(b.Offset(), qt.Equals, core.VI(1, 1))
	c.Assert(b.Population(), qt.Equals, 3)
}

func TestFromRowsTransposes(t *testing.T) {
	c := qt.New(t)
	b, err := FromRows("row", [][]bool{{true, false, false}})
	c.Assert(err, qt.IsNil)
	c.Assert(b.Width(), qt.Equals, 3)
	c.Assert(b.Height(), qt.Equals, 1)
	c.Assert(b.At(0, 0), qt.IsTrue)
	c.Assert(b.At(1, 0), qt.IsFalse)
	c.Assert(b.At(5, 0), qt.IsFalse)
	c.Assert(b.At(-1, 0), qt.IsFalse)
}

func TestRotateAndFlip(t *testing.T) {
	c := qt.New(t)
	// X.
	// XX
	// X.
	b, err := ParsePlaintext("t", "O.\nOO\nO.")
	c.Assert(err, qt.IsNil)

	r := b.Rotate()
	c.Assert(Format(r), qt.Equals, "!Name: t\nOOO\n.O.\n")

	f := b.Flip()
	c.Assert(Format(f), qt.Equals, "!Name: t\n.O\nOO\n.O\n")

	full := b.Rotate().Rotate().Rotate().Rotate()
	c.Assert(full.Pattern, qt.DeepEquals, b.Pattern)
}

func TestParsePlaintext(t *testing.T) {
	c := qt.New(t)
	b, err := ParsePlaintext("fallback", "!Name: Glider\n!comment\n.O\n..O\nOOO\n\n")
	c.Assert(err, qt.IsNil)
	c.Assert(b.Name, qt.Equals, "Glider")
	c.Assert(b.Width(), qt.Equals, 3)
	c.Assert(b.Height(), qt.Equals, 3)
	c.Assert(b.At(1, 0), qt.IsTrue)
	c.Assert(b.At(2, 0), qt.IsFalse)
	c.Assert(b.At(2, 1), qt.IsTrue)
	c.Assert(b.Population(), qt.Equals, 5)

	_, err = ParsePlaintext("bad", "O.x")
	c.Assert(errgo.Cause(err), qt.Equals, ErrSyntax)
	c.Assert(err, qt.ErrorMatches, `line 1 col 3: unexpected 'x'`)

	_, err = ParsePlaintext("none", "!only comments\n")
	c.Assert(errgo.Cause(err), qt.Equals, ErrEmptyPattern)
}

func TestPlaintextRoundTrip(t *testing.T) {
	c := qt.New(t)
	for _, b := range Lexicon() {
		got, err := ParsePlaintext("", Format(b))
		c.Assert(err, qt.IsNil, qt.Commentf("%s", b.Name))
		c.Assert(got.Name, qt.Equals, b.Name)
		c.Assert(got.Pattern, qt.DeepEquals, b.Pattern, qt.Commentf("%s", b.Name))
	}
}

func TestParseRLE(t *testing.T) {
	c := qt.New(t)
	b, rule, err := ParseRLE(`#N Glider
#C a comment
x = 3, y = 3, rule = B3/S23
bob$2bo$3o!`)
	c.Assert(err, qt.IsNil)
	c.Assert(rule, qt.Equals, "B3/S23")
	c.Assert(b.Name, qt.Equals, "Glider")
	glider, _ := Lookup("glider")
	c.Assert(b.Pattern, qt.DeepEquals, glider.Pattern)
}

func TestParseRLEBlankRowsAndPadding(t *testing.T) {
	c := qt.New(t)
	b, rule, err := ParseRLE("x = 4, y = 4\no2$bo!")
	c.Assert(err, qt.IsNil)
	c.Assert(rule, qt.Equals, "")
	c.Assert(b.Width(), qt.Equals, 4)
	c.Assert(b.Height(), qt.Equals, 4)
	c.Assert(b.At(0, 0), qt.IsTrue)
	c.Assert(b.At(1, 2), qt.IsTrue)
	c.Assert(b.Population(), qt.Equals, 2)
}

func TestParseRLEErrors(t *testing.T) {
	c := qt.New(t)
	_, _, err := ParseRLE("x = 3, y = q\n3o!")
	c.Assert(errgo.Cause(err), qt.Equals, ErrSyntax)

	_, _, err = ParseRLE("x = 3\n3z!")
	c.Assert(errgo.Cause(err), qt.Equals, ErrSyntax)

	_, _, err = ParseRLE("#C nothing\n!")
	c.Assert(errgo.Cause(err), qt.Equals, ErrEmptyPattern)
}

func TestParseRLESizeLimits(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		about       string
		text        string
		expectError string
	}{{
		about:       "huge header",
		text:        "x = 20000, y = 20000\n!",
		expectError: `rle header: x = 20000 exceeds 4096`,
	}, {
		about:       "overflowing run count",
		text:        "99999999999999999999o!",
		expectError: `rle offset \d+: run count exceeds 4096`,
	}, {
		about:       "wide row",
		text:        "4000o4000b!",
		expectError: `rle offset \d+: row wider than 4096`,
	}, {
		about:       "too many rows",
		text:        "o3000$3000$o!",
		expectError: `rle offset \d+: more than 4096 rows`,
	}}
	for _, test := range tests {
		c.Run(test.about, func(c *qt.C) {
			_, _, err := ParseRLE(test.text)
			c.Assert(err, qt.ErrorMatches, test.expectError)
			c.Assert(errgo.Cause(err), qt.Equals, ErrSyntax)
		})
	}

	b, _, err := ParseRLE("4096o!")
	c.Assert(err, qt.IsNil)
	c.Assert(b.Width(), qt.Equals, MaxPatternSize)
}

func TestRLERoundTrip(t *testing.T) {
	c := qt.New(t)
	for _, b := range Lexicon() {
		text := FormatRLE(b, "B3/S23")
		got, rule, err := ParseRLE(text)
		c.Assert(err, qt.IsNil, qt.Commentf("%s: %s", b.Name, text))
		c.Assert(rule, qt.Equals, "B3/S23")
		c.Assert(got.Pattern, qt.DeepEquals, b.Pattern, qt.Commentf("%s: %s", b.Name, text))
	}
}

func TestFormatRLE(t *testing.T) {
	c := qt.New(t)
	glider, _ := Lookup("glider")
	c.Assert(FormatRLE(glider, ""), qt.Equals, "#N glider\nx = 3, y = 3\nbo$2bo$3o!\n")
}

func TestLexicon(t *testing.T) {
	c := qt.New(t)
	all := Lexicon()
	c.Assert(len(all) > 5, qt.IsTrue)
	for i := 1; i < len(all); i++ {
		c.Assert(all[i-1].Name < all[i].Name, qt.IsTrue)
	}
	pulsar, ok := Lookup("pulsar")
	c.Assert(ok, qt.IsTrue)
	c.Assert(pulsar.Size, qt.Equals, core.VI(13, 13))
	c.Assert(pulsar.Population(), qt.Equals, 48)

	eraser, ok := Lookup("eraser")
	c.Assert(ok, qt.IsTrue)
	c.Assert(eraser.Population(), qt.Equals, 0)

	_, ok = Lookup("nope")
	c.Assert(ok, qt.IsFalse)
}

package life

import (
	"testing"

	qt "github.com/frankban/quicktest"
	errgo "gopkg.in/errgo.v1"
)

var parseRuleTests = []struct {
	rule        string
	expect      string
	expectError string
}{{
	rule:   "B3/S23",
	expect: "B3/S23",
}, {
	rule:   "b36/s23",
	expect: "B36/S23",
}, {
	rule:   "S23/B3",
	expect: "B3/S23",
}, {
	rule:   "23/3",
	expect: "B3/S23",
}, {
	rule:   "B2/S",
	expect: "B2/S",
}, {
	rule:   " B3678/S34678 ",
	expect: "B3678/S34678",
}, {
	rule:   "B/S012345678",
	expect: "B/S012345678",
}, {
	rule:        "B3S23",
	expectError: `rule "B3S23": want two parts separated by /`,
}, {
	rule:        "B9/S23",
	expectError: `rule "B9/S23": birth: invalid neighbour count '9'`,
}, {
	rule:        "B3/Sx",
	expectError: `rule "B3/Sx": survival: invalid neighbour count 'X'`,
}, {
	rule:        "B3/B2",
	expectError: `rule "B3/B2": cannot tell birth from survival`,
}}

func TestParseRule(t *testing.T) {
	c := qt.New(t)
	for _, test := range parseRuleTests {
		c.Run(test.rule, func(c *qt.C) {
			r, err := ParseRule(test.rule)
			if test.expectError != "" {
				c.Assert(err, qt.ErrorMatches, test.expectError)
				c.Assert(errgo.Cause(err), qt.Equals, ErrBadRule)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(r.String(), qt.Equals, test.expect)
			c.Assert(r.DetectOscillations, qt.IsTrue)
		})
	}
}

func TestConway(t *testing.T) {
	c := qt.New(t)
	r := Conway()
	c.Assert(r, qt.Equals, MustParseRule("B3/S23"))
	c.Assert(r.Next(true, 1), qt.IsFalse)
	c.Assert(r.Next(true, 2), qt.IsTrue)
	c.Assert(r.Next(true, 3), qt.IsTrue)
	c.Assert(r.Next(true, 4), qt.IsFalse)
	c.Assert(r.Next(false, 3), qt.IsTrue)
	c.Assert(r.Next(false, 2), qt.IsFalse)
}

func TestRulesAreValues(t *testing.T) {
	c := qt.New(t)
	r := Conway()
	changed := r.WithBirth(6, true).WithSurvive(2, false).WithOscillations(false)
	c.Assert(r.String(), qt.Equals, "B3/S23")
	c.Assert(r.DetectOscillations, qt.IsTrue)
	c.Assert(changed.String(), qt.Equals, "B36/S3")
	c.Assert(changed.DetectOscillations, qt.IsFalse)

	// Out of range counts are ignored.
	c.Assert(r.WithBirth(9, true), qt.Equals, r)
	c.Assert(r.WithSurvive(-1, true), qt.Equals, r)
}

func TestMustParseRulePanics(t *testing.T) {
	c := qt.New(t)
	c.Assert(func() { MustParseRule("nope") }, qt.PanicMatches, `rule "nope": .*`)
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	errgo "gopkg.in/errgo.v1"

	"lifelab/internal/app"
	"lifelab/internal/brush"
	"lifelab/internal/sims/life"
)

func TestRunCmd(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(c.TempDir(), "blinker.cells")
	c.Assert(os.WriteFile(path, []byte("OOO\n"), 0o644), qt.IsNil)

	var out bytes.Buffer
	err := runCmd(context.Background(), &out, []string{"--pattern", path, "-w", "8", "-h", "8", "-n", "4", "--every", "2"})
	c.Assert(err, qt.IsNil)
	c.Assert(out.String(), qt.Matches, `(?s)life B3/S23 on 8x8
gen 0: alive 3, oscillating 0
gen 2: alive 3, .*
gen 4: alive 3, .*
`)
}

func TestRunCmdErrors(t *testing.T) {
	c := qt.New(t)
	var out bytes.Buffer
	err := runCmd(context.Background(), &out, []string{"--sim", "nope"})
	c.Assert(err, qt.ErrorMatches, `unknown sim "nope".*`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = runCmd(ctx, &out, []string{"-w", "8", "-h", "8", "-n", "5"})
	c.Assert(err, qt.Equals, context.Canceled)
}

func TestSweep(t *testing.T) {
	c := qt.New(t)
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 16, 16

	results, err := sweep(context.Background(), cfg, []string{"life", "seeds", "maze"}, 5, 2)
	c.Assert(err, qt.IsNil)
	c.Assert(results, qt.HasLen, 3)
	seen := map[string]bool{}
	for i, res := range results {
		seen[res.name] = true
		want, ok := life.LookupPreset(res.name)
		c.Assert(ok, qt.IsTrue)
		c.Assert(res.rule, qt.Equals, want.String())
		if i > 0 {
			c.Assert(results[i-1].population >= res.population, qt.IsTrue)
		}
	}
	c.Assert(seen, qt.DeepEquals, map[string]bool{"life": true, "seeds": true, "maze": true})

	_, err = sweep(context.Background(), cfg, []string{"life", "nope"}, 5, 0)
	c.Assert(err, qt.ErrorMatches, `unknown sim "nope".*`)
}

func TestSweepCmd(t *testing.T) {
	c := qt.New(t)
	var out bytes.Buffer
	err := sweepCmd(context.Background(), &out, []string{"-w", "12", "-h", "12", "-n", "3", "--workers", "2", "life", "highlife"})
	c.Assert(err, qt.IsNil)
	c.Assert(out.String(), qt.Matches, `(?s)Sweeping 2 presets \(2 workers, 3 generations, 12x12\)
 1\) .*
 2\) .*
`)
}

func TestBrushStoreCommands(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	store := brush.NewMemoryStore()

	var out bytes.Buffer
	c.Assert(saveBrushes(ctx, store, &out, []string{"glider", "block"}), qt.IsNil)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	c.Assert(lines, qt.HasLen, 2)
	gliderID := strings.Fields(lines[0])[0]
	c.Assert(strings.Fields(lines[0])[1], qt.Equals, "glider")

	out.Reset()
	c.Assert(listBrushes(ctx, store, &out), qt.IsNil)
	c.Assert(out.String(), qt.Matches, `(?s)\S+ block +2x2\n\S+ glider +3x3\n`)

	out.Reset()
	c.Assert(showBrushes(ctx, store, &out, []string{gliderID}), qt.IsNil)
	c.Assert(out.String(), qt.Equals, "!Name: glider\n.O.\n..O\nOOO\n")

	err := showBrushes(ctx, store, &out, []string{"missing"})
	c.Assert(errgo.Cause(err), qt.Equals, brush.ErrNotFound)

	out.Reset()
	c.Assert(deleteBrushes(ctx, store, &out, []string{gliderID}), qt.IsNil)
	c.Assert(out.String(), qt.Equals, "deleted "+gliderID+"\n")
	err = deleteBrushes(ctx, store, &out, []string{gliderID})
	c.Assert(errgo.Cause(err), qt.Equals, brush.ErrNotFound)

	c.Assert(saveBrushes(ctx, store, &out, nil), qt.ErrorMatches, "nothing to save")
	err = saveBrushes(ctx, store, &out, []string{filepath.Join(c.TempDir(), "none.rle")})
	c.Assert(err, qt.ErrorMatches, "cannot read pattern: .*")
}

func TestBrushCmd(t *testing.T) {
	c := qt.New(t)
	var out bytes.Buffer
	c.Assert(brushCmd(context.Background(), &out, []string{"lexicon"}), qt.IsNil)
	c.Assert(out.String(), qt.Matches, `(?s).*glider +3x3 alive 5\n.*`)

	c.Assert(brushCmd(context.Background(), &out, nil), qt.ErrorMatches, "usage: .*")

	// The default backend follows the build; without sqlite the list starts empty.
	out.Reset()
	if brush.DefaultStoreKind() == "memory" {
		c.Assert(brushCmd(context.Background(), &out, []string{"list"}), qt.IsNil)
		c.Assert(out.String(), qt.Equals, "")
	}
	c.Assert(brushCmd(context.Background(), &out, []string{"bogus"}), qt.ErrorMatches, `unknown brush action "bogus"`)
	c.Assert(brushCmd(context.Background(), &out, []string{"list", "--store", "carrier-pigeon"}), qt.ErrorMatches, "unsupported brush store backend: carrier-pigeon")
}

// Command lifectl runs Life-like automata without a window: single runs,
// concurrent rule sweeps, and management of the saved brush library.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	errgo "gopkg.in/errgo.v1"

	"lifelab/internal/app"
)

var logger = loggo.GetLogger("lifelab.cmd.lifectl")

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, stdout io.Writer, args []string) error
}

var commands = []command{
	{"run", "step one grid and report population", runCmd},
	{"sweep", "run every rule preset from the same soup", sweepCmd},
	{"brush", "save, list, show or delete stored brushes", brushCmd},
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	name := os.Args[1]
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}
		if err := cmd.run(ctx, os.Stdout, os.Args[2:]); err != nil {
			if err == gnuflag.ErrHelp {
				os.Exit(2)
			}
			fmt.Fprintf(os.Stderr, "lifectl %s: %v\n", name, err)
			os.Exit(1)
		}
		return
	}
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: lifectl <command> [flags] [args]\n\ncommands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(os.Stderr, "  %-6s %s\n", cmd.name, cmd.summary)
	}
}

// bindWorld binds the flags shared by commands that build a grid.
func bindWorld(fs *gnuflag.FlagSet, cfg *app.Config) {
	fs.IntVar(&cfg.Width, "w", cfg.Width, "grid width in cells")
	fs.IntVar(&cfg.Height, "h", cfg.Height, "grid height in cells")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the random soup")
	fs.Float64Var(&cfg.Density, "density", cfg.Density, "initial live cell density")
	fs.StringVar(&cfg.Presets, "presets", cfg.Presets, "YAML file with extra rule presets")
}

// parse parses args and applies the --log flag.
func parse(fs *gnuflag.FlagSet, args []string) error {
	logSpec := fs.String("log", "<root>=WARNING", "loggo logging configuration")
	if err := fs.Parse(true, args); err != nil {
		return err
	}
	if err := loggo.ConfigureLoggers(*logSpec); err != nil {
		return errgo.Notef(err, "invalid --log")
	}
	return nil
}

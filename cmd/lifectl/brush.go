package main

import (
	"context"
	"fmt"
	"io"

	"github.com/juju/gnuflag"
	errgo "gopkg.in/errgo.v1"

	"lifelab/internal/brush"
)

func brushCmd(ctx context.Context, stdout io.Writer, args []string) error {
	if len(args) == 0 {
		return errgo.New("usage: lifectl brush save|list|show|delete|lexicon [flags] [args]")
	}
	action, args := args[0], args[1:]
	fs := gnuflag.NewFlagSet("brush "+action, gnuflag.ContinueOnError)
	kind := fs.String("store", brush.DefaultStoreKind(), "brush store backend: sqlite (needs -tags sqlite) or memory (kept for this run only)")
	dbPath := fs.String("db", "lifelab.db", "sqlite database path")
	if err := parse(fs, args); err != nil {
		return err
	}
	if action == "lexicon" {
		return listLexicon(stdout)
	}

	store, err := brush.NewStore(ctx, *kind, *dbPath)
	if err != nil {
		return errgo.Mask(err)
	}
	if *kind == "memory" && action != "save" {
		logger.Warningf("memory brush store is empty at start; saved brushes need --store sqlite")
	}
	defer func() {
		if err := brush.CloseIfSupported(store); err != nil {
			logger.Warningf("closing store: %v", err)
		}
	}()

	switch action {
	case "save":
		return saveBrushes(ctx, store, stdout, fs.Args())
	case "list":
		return listBrushes(ctx, store, stdout)
	case "show":
		return showBrushes(ctx, store, stdout, fs.Args())
	case "delete":
		return deleteBrushes(ctx, store, stdout, fs.Args())
	}
	return errgo.Newf("unknown brush action %q", action)
}

// saveBrushes stores each argument, which is either a lexicon name or a
// pattern file, and prints the new IDs.
func saveBrushes(ctx context.Context, store brush.Store, w io.Writer, args []string) error {
	if len(args) == 0 {
		return errgo.New("nothing to save")
	}
	for _, arg := range args {
		b, ok := brush.Lookup(arg)
		if !ok {
			var err error
			if b, _, err = brush.LoadFile(arg); err != nil {
				return errgo.Mask(err, errgo.Any)
			}
		}
		id, err := store.Save(ctx, b)
		if err != nil {
			return errgo.Notef(err, "cannot save %s", b.Name)
		}
		fmt.Fprintf(w, "%s %s\n", id, b.Name)
	}
	return nil
}

func listBrushes(ctx context.Context, store brush.Store, w io.Writer) error {
	records, err := store.List(ctx)
	if err != nil {
		return errgo.Mask(err)
	}
	for _, r := range records {
		fmt.Fprintf(w, "%s %-16s %dx%d\n", r.ID, r.Name, r.Width, r.Height)
	}
	return nil
}

func showBrushes(ctx context.Context, store brush.Store, w io.Writer, ids []string) error {
	for _, id := range ids {
		b, ok, err := store.Get(ctx, id)
		if err != nil {
			return errgo.Mask(err)
		}
		if !ok {
			return errgo.WithCausef(nil, brush.ErrNotFound, "brush %q not found", id)
		}
		fmt.Fprint(w, brush.Format(b))
	}
	return nil
}

func deleteBrushes(ctx context.Context, store brush.Store, w io.Writer, ids []string) error {
	for _, id := range ids {
		if err := store.Delete(ctx, id); err != nil {
			return errgo.Mask(err, errgo.Is(brush.ErrNotFound))
		}
		fmt.Fprintf(w, "deleted %s\n", id)
	}
	return nil
}

func listLexicon(w io.Writer) error {
	for _, b := range brush.Lexicon() {
		fmt.Fprintf(w, "%-16s %dx%d alive %d\n", b.Name, b.Width(), b.Height(), b.Population())
	}
	return nil
}

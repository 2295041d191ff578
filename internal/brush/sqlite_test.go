//go:build sqlite

package brush

import (
	"context"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSQLiteStore(t *testing.T) {
	c := qt.New(t)
	store, err := NewStore(context.Background(), "sqlite", filepath.Join(t.TempDir(), "brushes.db"))
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() {
		_ = CloseIfSupported(store)
	})
	testStore(c, store)
}

func TestDefaultStoreKindSQLite(t *testing.T) {
	qt.Assert(t, DefaultStoreKind(), qt.Equals, "sqlite")
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	c := qt.New(t)
	err := NewSQLiteStore("").Init(context.Background())
	c.Assert(err, qt.ErrorMatches, "sqlite path is required")
}

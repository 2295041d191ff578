package brush

import (
	"context"

	"github.com/juju/loggo"
	errgo "gopkg.in/errgo.v1"
)

var logger = loggo.GetLogger("lifelab.brush")

// ErrNotFound is the cause of errors for missing brushes.
var ErrNotFound = errgo.New("brush not found")

// Record summarises a stored brush.
type Record struct {
	ID     string
	Name   string
	Width  int
	Height int
}

// Store persists named brushes so they can be reused across sessions.
type Store interface {
	// Save stores b and returns its new ID.
	Save(ctx context.Context, b *Brush) (string, error)
	Get(ctx context.Context, id string) (*Brush, bool, error)
	// List returns all records ordered by name then ID.
	List(ctx context.Context) ([]Record, error)
	// Delete removes the brush; the cause is ErrNotFound when id is unknown.
	Delete(ctx context.Context, id string) error
}

// NewStore opens a store of the given kind. The sqlite kind is only
// available in builds with the sqlite tag.
func NewStore(ctx context.Context, kind, sqlitePath string) (Store, error) {
	logger.Debugf("opening %q brush store", kind)
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(ctx, sqlitePath)
	default:
		return nil, errgo.Newf("unsupported brush store backend: %s", kind)
	}
}

// DefaultStoreKind is the backend used when none is named: sqlite when the
// build includes it, memory otherwise. Memory stores do not outlive the
// process.
func DefaultStoreKind() string { return defaultStoreKind }

// CloseIfSupported closes stores that hold external resources.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}

func recordOf(id string, b *Brush) Record {
	return Record{ID: id, Name: b.Name, Width: b.Width(), Height: b.Height()}
}

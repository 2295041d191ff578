//go:build !sqlite

package brush

import (
	"context"

	errgo "gopkg.in/errgo.v1"
)

const defaultStoreKind = "memory"

func newSQLiteStore(context.Context, string) (Store, error) {
	return nil, errgo.New("sqlite backend unavailable in this build; rebuild with -tags sqlite")
}

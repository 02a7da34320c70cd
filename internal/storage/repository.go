// Package storage contains storage-agnostic contracts for the optional
// relational load of the cleaned table, plus a small backend factory mirroring
// the metrics abstraction: callers depend only on Repository and select a
// concrete backend by kind.
package storage

import (
	"context"
	"fmt"
	"sort"
)

// Repository is the minimal sink interface used by the pipeline runner.
type Repository interface {
	// InsertRows bulk-inserts rows aligned to the columns order and returns
	// the number of rows inserted.
	InsertRows(ctx context.Context, columns []string, rows [][]any) (int64, error)

	// Exec runs a single statement (used for table bootstrap).
	Exec(ctx context.Context, query string, args ...any) error

	// Close releases the underlying connections.
	Close()
}

// Config carries the backend-independent connection settings.
type Config struct {
	Kind  string
	DSN   string
	Table string
}

// Factory constructs a Repository for one backend kind.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var factories = map[string]Factory{}

// Register installs a backend factory under kind. Backends call Register from
// init; the program selects them via the storage/all blank import.
func Register(kind string, f Factory) {
	factories[kind] = f
}

// New constructs the Repository for cfg.Kind.
func New(ctx context.Context, cfg Config) (Repository, error) {
	f, ok := factories[cfg.Kind]
	if !ok {
		return nil, fmt.Errorf("storage: unknown kind %q (registered: %v)", cfg.Kind, kinds())
	}
	return f(ctx, cfg)
}

func kinds() []string {
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

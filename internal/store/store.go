// Package store selects the company store backend and exposes it behind one interface.
package store

import (
	"context"
	"fmt"

	"github.com/jonathan/london-crypto-directory/internal/db"
	"github.com/jonathan/london-crypto-directory/internal/types"
)

// Driver identifies a concrete storage implementation.
type Driver string

const (
	DriverMemory   Driver = "memory"   // in-memory only (tests / ephemeral)
	DriverSQLite   Driver = "sqlite"   // embedded sqlite file
	DriverPostgres Driver = "postgres" // managed PostgreSQL table
)

// Store is the read side of the directory plus the submissions log.
type Store interface {
	ListCompanies(ctx context.Context) ([]types.Company, error)
	SaveSubmission(ctx context.Context, sub *types.Submission) error
	Close() error
}

// Options configures Open.
type Options struct {
	Driver      Driver
	DatabaseURL string
	SQLitePath  string
}

// Open returns the store for opts.Driver. Postgres is assumed when the
// driver is empty and a database URL is set, sqlite otherwise.
func Open(ctx context.Context, opts Options) (Store, error) {
	driver := opts.Driver
	if driver == "" {
		driver = DriverSQLite
		if opts.DatabaseURL != "" {
			driver = DriverPostgres
		}
	}

	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return OpenSQLite(ctx, opts.SQLitePath)
	case DriverPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres driver requires a database URL")
		}
		database, err := db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx); err != nil {
			_ = database.Close()
			return nil, err
		}
		return database, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

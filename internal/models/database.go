package models

import (
	"context"
	"database/sql"
)

// * Source is the backing store of the catalog. Every call re-reads it in full.
type Source interface {
	LoadRepositories(ctx context.Context) ([]Repository, error)
}

// * This interface defines the db operations needed by the Postgres mirror
type Database interface {
	Source

	// * Transaction support
	WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error
	ReplaceRepositoriesTx(ctx context.Context, tx *sql.Tx, repos []Repository) error
}

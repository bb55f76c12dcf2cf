package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/KOFI-GYIMAH/uc-orb/internal/models"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/errors"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
)

var _ models.Database = (*PostgresDB)(nil)

type PostgresDB struct {
	db *sql.DB
}

func NewPostgresDB(url string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, errors.New(
			"DB_CONNECTION_ERROR",
			"Failed to open database connection",
			"Could not initialize database connection",
			err,
			errors.LevelFatal,
		)
	}

	// * Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	// * Verify connection
	if err := db.Ping(); err != nil {
		return nil, errors.New(
			"DB_CONNECTION_ERROR",
			"Failed to verify database connection",
			"Database ping failed",
			err,
			errors.LevelFatal,
		)
	}

	logger.Info("connected to database successfully 🎉")
	return &PostgresDB{db: db}, nil
}

func (p *PostgresDB) Migrate(sourceURL string) error {
	driver, err := postgres.WithInstance(p.db, &postgres.Config{})
	if err != nil {
		return errors.New(
			"DB_MIGRATION_ERROR",
			"Failed to create migration driver",
			"Could not initialize migration driver instance",
			err,
			errors.LevelFatal,
		)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return errors.New(
			"DB_MIGRATION_ERROR",
			"Failed to create migration instance",
			fmt.Sprintf("Could not create migration instance from %s", sourceURL),
			err,
			errors.LevelFatal,
		)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.New(
			"DB_MIGRATION_ERROR",
			"Failed to run migrations",
			"Migration up operation failed",
			err,
			errors.LevelFatal,
		)
	}

	return nil
}

func (p *PostgresDB) Close() error {
	if err := p.db.Close(); err != nil {
		return errors.New(
			"DB_CONNECTION_ERROR",
			"Failed to close database connection",
			"Error while closing database connection",
			err,
			errors.LevelWarning,
		)
	}
	return nil
}

func (p *PostgresDB) WithTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.New(
			"DB_TRANSACTION_ERROR",
			"Failed to begin transaction",
			"Could not start database transaction",
			err,
			errors.LevelFatal,
		)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.New(
				"DB_TRANSACTION_ERROR",
				"Transaction failed and rollback encountered error",
				"Transaction error with additional rollback failure",
				fmt.Errorf("transaction error: %v, rollback error: %w", err, rbErr),
				errors.LevelFatal,
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return errors.New(
			"DB_TRANSACTION_ERROR",
			"Failed to commit transaction",
			"Error while committing transaction",
			err,
			errors.LevelFatal,
		)
	}

	return nil
}

// * LoadRepositories queries the mirror in file order. A failing query is
// * surfaced the same way as a broken data file.
func (p *PostgresDB) LoadRepositories(ctx context.Context) ([]models.Repository, error) {
	query := `
		SELECT id, name, description, url, stars, forks, language, campus, topics, last_updated
		FROM repositories
		ORDER BY position
	`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.DataUnavailable("Could not query repositories table", err)
	}
	defer rows.Close()

	repos := []models.Repository{}
	for rows.Next() {
		var r models.Repository
		err := rows.Scan(
			&r.ID, &r.Name, &r.Description, &r.URL, &r.Stars, &r.Forks,
			&r.Language, &r.Campus, pq.Array(&r.Topics), &r.LastUpdated,
		)
		if err != nil {
			return nil, errors.DataUnavailable(
				fmt.Sprintf("Could not scan repository row after id %d", lastID(repos)),
				err,
			)
		}
		if r.Topics == nil {
			r.Topics = []string{}
		}
		repos = append(repos, r)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.DataUnavailable("Could not iterate repositories table", err)
	}

	return repos, nil
}

// * ReplaceRepositoriesTx swaps the whole mirror for repos, keeping their order
func (p *PostgresDB) ReplaceRepositoriesTx(ctx context.Context, tx *sql.Tx, repos []models.Repository) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM repositories`); err != nil {
		return errors.New(
			"DB_REPOSITORY_ERROR",
			"Failed to clear repositories",
			"Could not delete existing repositories before import",
			err,
			errors.LevelFatal,
		)
	}

	query := `
		INSERT INTO repositories (
			id, position, name, description, url, stars, forks,
			language, campus, topics, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for i, repo := range repos {
		_, err := tx.ExecContext(ctx, query,
			repo.ID, i, repo.Name, repo.Description, repo.URL, repo.Stars, repo.Forks,
			repo.Language, repo.Campus, pq.Array(repo.Topics), repo.LastUpdated,
		)
		if err != nil {
			return errors.New(
				"DB_REPOSITORY_ERROR",
				"Failed to insert repository",
				fmt.Sprintf("Could not insert repository '%d' (%s)", repo.ID, repo.Name),
				err,
				errors.LevelFatal,
			)
		}
	}

	return nil
}

func lastID(repos []models.Repository) int {
	if len(repos) == 0 {
		return 0
	}
	return repos[len(repos)-1].ID
}

package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KOFI-GYIMAH/uc-orb/internal/github"
	"github.com/KOFI-GYIMAH/uc-orb/internal/models"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
)

const lastUpdatedLayout = "2006-01-02"

// GitHubClient is the part of the GitHub client used to refresh counters.
type GitHubClient interface {
	GetRepository(ctx context.Context, owner, name string) (*github.Repository, error)
}

// CatalogImporter copies the catalog document into the Postgres mirror.
// When a GitHub client is set, stars, forks and last_updated are refreshed
// from the API first; records that cannot be refreshed keep their file values.
type CatalogImporter struct {
	source       models.Source
	db           models.Database
	githubClient GitHubClient
}

func NewCatalogImporter(source models.Source, db models.Database, githubClient GitHubClient) *CatalogImporter {
	return &CatalogImporter{
		source:       source,
		db:           db,
		githubClient: githubClient,
	}
}

// * Import returns the number of records written
func (i *CatalogImporter) Import(ctx context.Context) (int, error) {
	logger.Info("Importing repository catalog...")

	repos, err := i.source.LoadRepositories(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load catalog: %w", err)
	}

	if i.githubClient != nil {
		i.enrich(ctx, repos)
	}

	err = i.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		return i.db.ReplaceRepositoriesTx(ctx, tx, repos)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save catalog: %w", err)
	}

	logger.Info("Successfully imported %d repositories", len(repos))
	return len(repos), nil
}

func (i *CatalogImporter) enrich(ctx context.Context, repos []models.Repository) {
	refreshed := 0
	for idx := range repos {
		repo := &repos[idx]

		owner, name, err := github.ParseRepositoryURL(repo.URL)
		if err != nil {
			logger.Debug("Skipping enrichment of %d: %v", repo.ID, err)
			continue
		}

		remote, err := i.githubClient.GetRepository(ctx, owner, name)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("Could not refresh %s/%s: %v", owner, name, err)
			continue
		}

		repo.Stars = remote.StargazersCount
		repo.Forks = remote.ForksCount
		if last := remote.LastActivity(); !last.IsZero() {
			repo.LastUpdated = last.UTC().Format(lastUpdatedLayout)
		}
		refreshed++
	}

	logger.Info("Refreshed %d of %d repositories from GitHub", refreshed, len(repos))
}

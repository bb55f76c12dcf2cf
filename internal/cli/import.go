package cli

import (
	"context"
	"fmt"

	"github.com/KOFI-GYIMAH/uc-orb/internal/config"
	"github.com/KOFI-GYIMAH/uc-orb/internal/db"
	"github.com/KOFI-GYIMAH/uc-orb/internal/github"
	"github.com/KOFI-GYIMAH/uc-orb/internal/service"
	"github.com/KOFI-GYIMAH/uc-orb/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the catalog document into the Postgres mirror",
	Long: `Reads the catalog document (a file path or s3:// URI), optionally refreshes
stars, forks and last_updated from GitHub, and replaces the Postgres mirror in a
single transaction.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		refresh, _ := cmd.Flags().GetBool("refresh")
		importer, cleanup, err := newImporter(cmd.Context(), cfg, refresh)
		if err != nil {
			return err
		}
		defer cleanup()

		n, err := importer.Import(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "imported %d repositories from %s\n", n, cfg.DataSource)
		return nil
	},
}

// newImporter builds an importer reading cfg.DataSource into the mirror.
func newImporter(ctx context.Context, cfg *config.Config, refresh bool) (*service.CatalogImporter, func(), error) {
	if err := cfg.RequireDB(); err != nil {
		return nil, nil, err
	}
	if cfg.DataSource == config.DataSourcePostgres {
		return nil, nil, fmt.Errorf("import needs a file or s3:// source, not the mirror itself")
	}

	source, err := store.New(ctx, cfg.DataSource)
	if err != nil {
		return nil, nil, err
	}

	database, err := db.NewPostgresDB(cfg.DBURL)
	if err != nil {
		return nil, nil, err
	}

	var gh service.GitHubClient
	if refresh {
		gh = github.NewClient(cfg.GitHubToken)
	}

	cleanup := func() { database.Close() }
	return service.NewCatalogImporter(source, database, gh), cleanup, nil
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringP("source", "s", "", "Catalog document to import (defaults to DATA_SOURCE)")
	importCmd.Flags().Bool("refresh", false, "Refresh stars, forks and last_updated from the GitHub API")
}

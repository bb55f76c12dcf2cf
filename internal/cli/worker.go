package cli

import (
	"os/signal"
	"syscall"

	"github.com/KOFI-GYIMAH/uc-orb/internal/queue"
	"github.com/KOFI-GYIMAH/uc-orb/internal/worker"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Keep the Postgres mirror in step with the catalog document",
	Long: `Imports the catalog at start, then every IMPORT_INTERVAL. When RABBITMQ_URL
is set the worker also imports on every request queued with "orbctl enqueue".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		refresh, _ := cmd.Flags().GetBool("refresh")
		importer, cleanup, err := newImporter(ctx, cfg, refresh)
		if err != nil {
			return err
		}
		defer cleanup()

		var requests <-chan queue.ImportRequest
		if cfg.RabbitMQURL != "" {
			mq, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
			if err != nil {
				return err
			}
			defer mq.Close()

			requests, err = mq.ConsumeImportRequests(ctx)
			if err != nil {
				return err
			}
			logger.Info("Listening for import requests on %s", queue.ImportQueue)
		}

		worker.NewImportWorker(importer, cfg.ImportInterval, requests).Run(ctx)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
	workerCmd.Flags().StringP("source", "s", "", "Catalog document to import (defaults to DATA_SOURCE)")
	workerCmd.Flags().Bool("refresh", false, "Refresh stars, forks and last_updated from the GitHub API")
}

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/KOFI-GYIMAH/uc-orb/internal/queue"
	"github.com/spf13/cobra"
)

var enqueueCmd = &cobra.Command{
	Use:   "enqueue",
	Short: "Ask running import workers to reload the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.RequireRabbitMQ(); err != nil {
			return err
		}

		mq, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		defer mq.Close()

		host, _ := os.Hostname()
		req := queue.ImportRequest{Source: "orbctl@" + host, RequestedAt: time.Now().UTC()}
		if err := mq.PublishImportRequest(cmd.Context(), req); err != nil {
			return fmt.Errorf("failed to publish import request: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "queued import request on %s\n", queue.ImportQueue)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enqueueCmd)
}

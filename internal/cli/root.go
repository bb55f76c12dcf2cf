// Package cli holds the orbctl commands that maintain the Postgres mirror of
// the repository catalog, built using the Cobra library.
package cli

import (
	"fmt"
	"os"

	"github.com/KOFI-GYIMAH/uc-orb/internal/config"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "orbctl",
	Short: "Maintenance commands for the UC ORB catalog.",
	Long: `orbctl migrates the Postgres mirror of the repository catalog, imports the
catalog document into it and runs the background import worker.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.SetLevel(logger.LevelDebug)
		}
	},
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// loadConfig reads configuration and lets the --source flag override DATA_SOURCE.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfiguration()
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("source"); f != nil && f.Changed {
		cfg.DataSource = f.Value.String()
	}
	return cfg, nil
}

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fieldforge/fieldforge/internal/config"
	"github.com/fieldforge/fieldforge/internal/dataset"
	"github.com/fieldforge/fieldforge/internal/loader"
)

var (
	loadOut      string
	loadTruncate bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the exported dataset into a development database",
	Long: `Read the CSV dataset and bulk-insert it in dependency order into the
configured database (sqlite, postgresql, or mysql). Tables are created when
missing. The CSV files remain the canonical artifact; this command is a
convenience for local analytics work.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if loadOut != "" {
			cfg.OutputDir = loadOut
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		d, err := dataset.ReadDir(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to read dataset from %s: %w", cfg.OutputDir, err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		color.Cyan("🚚 Loading dataset from %s into %s...", cfg.OutputDir, cfg.Database.Provider)
		ldr, err := loader.Open(cmd.Context(), cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer ldr.Close()

		return ldr.Load(cmd.Context(), d, loadTruncate)
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringVar(&loadOut, "out", "", "Dataset directory (overrides config)")
	loadCmd.Flags().BoolVar(&loadTruncate, "truncate", false, "Clear existing rows before loading")
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fieldforge/fieldforge/internal/config"
	"github.com/fieldforge/fieldforge/internal/dataset"
	"github.com/fieldforge/fieldforge/internal/export"
	"github.com/fieldforge/fieldforge/internal/generate"
	"github.com/fieldforge/fieldforge/internal/sample"
	"github.com/fieldforge/fieldforge/internal/timeline"
)

var (
	generateSeed   int64
	generateAsOf   string
	generateOut    string
	generateSQLite bool
	generateForce  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fabricate a full dataset and export it as CSV seeds",
	Long: `Run every entity generator in dependency order and write one CSV per
entity plus a seed_schema.yml manifest to the output directory. The same
seed and --as-of date always produce byte-identical output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if generateOut != "" {
			cfg.OutputDir = generateOut
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		asOf, err := parseAsOf(generateAsOf)
		if err != nil {
			return err
		}

		if !generateForce {
			if err := ensureNoDataset(cfg.OutputDir); err != nil {
				return err
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			return err
		}

		seed := cfg.EffectiveSeed(generateSeed)
		s := sample.New(seed)
		clock := timeline.NewPicker(s, asOf, cfg.HorizonDays)

		color.Cyan("🏭 Generating dataset (seed %d, as of %s)...", seed, asOf.Format(time.DateOnly))
		res, err := generate.Run(s, clock, cfg.GenerateCounts())
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		if err := export.CSV(res.Dataset, cfg.OutputDir); err != nil {
			return err
		}
		if err := export.WriteManifest(res.Dataset, seed, asOf, cfg.OutputDir); err != nil {
			return err
		}

		if generateSQLite {
			path := filepath.Join(cfg.OutputDir, "fieldforge.db")
			color.Cyan("🗄️  Writing SQLite artifact %s...", path)
			if err := export.SQLite(cmd.Context(), res.Dataset, path); err != nil {
				return err
			}
		}

		printCounts(res.Dataset)
		color.Green("✅ Dataset written to %s", cfg.OutputDir)
		return nil
	},
}

// parseAsOf resolves the --as-of anchor date; empty means today.
func parseAsOf(value string) (time.Time, error) {
	if value == "" {
		return time.Now().UTC(), nil
	}
	asOf, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of date %q, want YYYY-MM-DD", value)
	}
	return asOf, nil
}

// ensureNoDataset refuses to clobber CSVs already in the output directory.
func ensureNoDataset(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read output directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".csv" {
			return fmt.Errorf("output directory %s already holds a dataset; use --force to overwrite or 'fieldforge extend' to grow it", dir)
		}
	}
	return nil
}

func printCounts(d *dataset.Dataset) {
	fmt.Println()
	for _, tab := range dataset.All() {
		fmt.Printf("   %-20s %6d\n", tab.Name, tab.Len(d))
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed (0 derives one from the clock)")
	generateCmd.Flags().StringVar(&generateAsOf, "as-of", "", "Anchor date YYYY-MM-DD treated as today (default: today)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Output directory (overrides config)")
	generateCmd.Flags().BoolVar(&generateSQLite, "sqlite", false, "Also write a single-file SQLite artifact")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Overwrite an existing dataset in the output directory")
}

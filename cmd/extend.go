package cmd

import (
	"fmt"
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
	extendSeed int64
	extendAsOf string
	extendOut  string
)

var extendCmd = &cobra.Command{
	Use:   "extend",
	Short: "Grow an exported dataset in place",
	Long: `Read the dataset in the output directory and generate new rows that
continue its identifiers and timeline: new ids start past the existing
maxima, new dates resume after the latest recorded history, and new rows may
reference old parents. Only the new rows are appended to the CSV files;
existing rows are never rewritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if extendOut != "" {
			cfg.OutputDir = extendOut
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		asOf, err := parseAsOf(extendAsOf)
		if err != nil {
			return err
		}

		existing, err := dataset.ReadDir(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to read dataset from %s: %w", cfg.OutputDir, err)
		}

		seed := cfg.EffectiveSeed(extendSeed)
		s := sample.New(seed)
		clock := timeline.NewPicker(s, asOf, cfg.HorizonDays)

		color.Cyan("🌱 Extending dataset (seed %d, as of %s)...", seed, asOf.Format(time.DateOnly))
		res, err := generate.Extend(s, clock, cfg.ExtendCounts(), existing)
		if err != nil {
			return fmt.Errorf("extension failed: %w", err)
		}

		if err := export.Append(res.Dataset, res.First, cfg.OutputDir); err != nil {
			return err
		}
		if err := export.WriteManifest(res.Dataset, seed, asOf, cfg.OutputDir); err != nil {
			return err
		}

		printNewCounts(res)
		color.Green("✅ Appended to dataset in %s", cfg.OutputDir)
		return nil
	},
}

func printNewCounts(res *generate.Result) {
	fmt.Println()
	for _, tab := range dataset.All() {
		if n := res.NewRows(tab); n > 0 {
			fmt.Printf("   %-20s +%d\n", tab.Name, n)
		}
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(extendCmd)

	extendCmd.Flags().Int64Var(&extendSeed, "seed", 0, "Random seed (0 derives one from the clock)")
	extendCmd.Flags().StringVar(&extendAsOf, "as-of", "", "Anchor date YYYY-MM-DD treated as today (default: today)")
	extendCmd.Flags().StringVar(&extendOut, "out", "", "Dataset directory (overrides config)")
}

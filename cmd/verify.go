package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fieldforge/fieldforge/internal/config"
	"github.com/fieldforge/fieldforge/internal/dataset"
	"github.com/fieldforge/fieldforge/internal/verify"
)

var verifyOut string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Audit an exported dataset against every integrity rule",
	Long: `Read the CSV dataset and recheck everything the generator promises:
identifier monotonicity, referential integrity, temporal ordering, and exact
derived values. Every violation is counted; the first few per entity are
printed. Exits non-zero when the dataset is inconsistent.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if verifyOut != "" {
			cfg.OutputDir = verifyOut
		}

		d, err := dataset.ReadDir(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to read dataset from %s: %w", cfg.OutputDir, err)
		}

		color.Cyan("🔍 Auditing dataset in %s...", cfg.OutputDir)
		fmt.Println()

		report := verify.Check(d)
		for _, res := range report.Results {
			if res.OK() {
				color.Green("✅ %-20s %6d rows", res.Entity, res.Rows)
				continue
			}
			color.Red("❌ %-20s %6d rows, %d violations", res.Entity, res.Rows, res.Count)
			for _, v := range res.Violations {
				color.Red("     %s", v)
			}
			if res.Count > len(res.Violations) {
				color.Red("     ... and %d more", res.Count-len(res.Violations))
			}
		}

		if !report.OK() {
			return fmt.Errorf("verification failed with %d violations", report.Total())
		}

		fmt.Println()
		color.Green("🎉 Dataset is internally consistent")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyOut, "out", "", "Dataset directory (overrides config)")
}

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fieldforge/fieldforge/internal/config"
)

var (
	initSQLite     bool
	initPostgresql bool
	initMySQL      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a fieldforge project in the current directory",
	Long: `Scaffold fieldforge.config.json with every sizing knob at its documented
default, create the output directory, and add a database URL entry to .env
for the load command. Refuses to overwrite an existing config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := "sqlite"
		flagCount := 0

		if initSQLite {
			provider = "sqlite"
			flagCount++
		}
		if initPostgresql {
			provider = "postgresql"
			flagCount++
		}
		if initMySQL {
			provider = "mysql"
			flagCount++
		}

		if flagCount > 1 {
			return fmt.Errorf("please specify only one database type (--sqlite, --postgresql, or --mysql)")
		}

		if err := config.InitializeProject(provider); err != nil {
			return err
		}

		color.Green("✅ Initialized fieldforge project with %s database support", provider)
		fmt.Println()
		color.Cyan("📝 Configuration written to %s", config.FileName)
		color.Cyan("📁 Output directory created: data/")
		fmt.Println()
		fmt.Println("🚀 Next steps:")
		fmt.Println("   fieldforge generate --seed 42   # Fabricate a full dataset")
		fmt.Println("   fieldforge verify               # Audit what was written")
		fmt.Println("   fieldforge load                 # Push it into your database")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initSQLite, "sqlite", false, "Initialize project for SQLite database")
	initCmd.Flags().BoolVar(&initPostgresql, "postgresql", false, "Initialize project for PostgreSQL database")
	initCmd.Flags().BoolVar(&initMySQL, "mysql", false, "Initialize project for MySQL database")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.0"
)

func showBanner() {
	cyan := color.New(color.FgCyan, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════╗",
		"║            F I E L D F O R G E                   ║",
		"║                                                  ║",
		"║   Synthetic field-service business datasets      ║",
		"║   19 linked tables • reproducible from a seed    ║",
		"╚══════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		cyan.Println(line)
	}

	fmt.Print("                     ")
	color.New(color.FgWhite, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "fieldforge",
	Short: "Synthetic dataset generator for an HVAC field-service business",
	Long: `
Fieldforge fabricates a self-consistent dataset for a mid-size heating and
cooling service company: customers, technicians, equipment, service calls,
invoices, payments, and the rest of the paperwork that ties them together.

Every foreign key resolves and every date respects cause and effect, while
derived figures recompute exactly from their inputs. A fixed seed reproduces
the same dataset byte for byte; the extend command grows an exported dataset
without touching its history.

Output is one CSV per entity plus a seed_schema.yml manifest, ready for a
downstream analytics pipeline or the built-in database loader.`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("fieldforge version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./fieldforge.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("fieldforge.config")
	}

	viper.AutomaticEnv()

	// A missing config file is fine; defaults cover every knob.
	_ = viper.ReadInConfig()
}

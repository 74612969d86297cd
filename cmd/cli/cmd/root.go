// Package cmd provides the CLI commands for albion-profit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"albion-profit/internal/config"
	"albion-profit/internal/logging"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	tablesFile   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "albion-profit",
	Short: "Profitability and arbitrage analysis for Albion Online production",
	Long: `albion-profit computes refining and crafting profitability, ranks
production cities, and finds cross-city arbitrage routes.

Examples:
  albion-profit refine --tier T5 --resource ORE --raw-price 100 --prev-price 280 --output-price 350
  albion-profit craft T4_SWORD --city "Fort Sterling" --sell-price 2000 --price T4_METAL=150 --price T3_METAL=75
  albion-profit route --tier T5 --resource ORE --quotes quotes.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.albion-profit.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	rootCmd.PersistentFlags().StringVar(&tablesFile, "tables", "", "HCL file overriding city tax and bonus tables")

	// Add subcommands
	rootCmd.AddCommand(refineCmd)
	rootCmd.AddCommand(craftCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("albion-profit version 0.1.0")
	},
}

// configCmd writes the default configuration to a file
var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Write the default configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Default().Save(args[0]); err != nil {
			return err
		}
		fmt.Printf("wrote default configuration to %s\n", args[0])
		return nil
	},
}

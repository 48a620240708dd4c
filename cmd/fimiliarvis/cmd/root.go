package cmd

import (
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "fimiliarvis",
	Short: "FimiliarVis analytics pipeline",
	Long: `FimiliarVis - LinkedIn performance analytics pipeline

Ingests the four Fimiliar spreadsheet exports (contacts enrichment,
engagement events, daily post updates, summary workbook), derives the
dashboard tables, and serves them two ways:

  serve   run the HTTP JSON API consumed by the live dashboard
  export  write the same documents as static JSON build artifacts`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (default: environment only)")
}

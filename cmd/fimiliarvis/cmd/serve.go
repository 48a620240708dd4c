package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RichDInfGrp/FimiliarVis/internal/app"
	"github.com/RichDInfGrp/FimiliarVis/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		application, err := app.NewApp(ctx, cfg)
		if err != nil {
			return fmt.Errorf("initializing application: %w", err)
		}
		return application.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves configuration from the --config file or environment.
func loadConfig() (config.Config, error) {
	if configFile != "" {
		return config.LoadFromFile(configFile)
	}
	return config.MustLoad(), nil
}

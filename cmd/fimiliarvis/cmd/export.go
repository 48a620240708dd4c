package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/dao"
	"github.com/RichDInfGrp/FimiliarVis/internal/domain/pipeline/policy"
	"github.com/RichDInfGrp/FimiliarVis/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run the pipeline once and write static JSON artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		loader := dao.NewLoader(cfg.Data.Dir, dao.Prefixes{
			Contacts:   cfg.Data.ContactsPrefix,
			Engagement: cfg.Data.EngagementPrefix,
			DailyPosts: cfg.Data.DailyPostsPrefix,
			Worksheet:  cfg.Data.WorksheetPrefix,
		})
		orchestrator := policy.New(loader, cfg.Data.ServiceStart, logger)

		ctx := context.Background()
		docs, err := orchestrator.Documents(ctx)
		if err != nil {
			return fmt.Errorf("building pipeline: %w", err)
		}

		writer := export.NewWriter(cfg.Export.OutputDir, logger)
		paths, err := writer.Write(docs)
		if err != nil {
			return err
		}
		logger.Info("export complete", "documents", len(paths), "dir", cfg.Export.OutputDir)

		if cfg.Export.S3Enabled {
			publisher, err := export.NewS3Publisher(export.S3Config{
				Endpoint:        cfg.S3.Endpoint,
				AccessKeyID:     cfg.S3.AccessKeyID,
				SecretAccessKey: cfg.S3.SecretAccessKey,
				Bucket:          cfg.S3.Bucket,
				Region:          cfg.S3.Region,
				KeyPrefix:       cfg.S3.KeyPrefix,
			}, logger)
			if err != nil {
				return fmt.Errorf("creating s3 publisher: %w", err)
			}
			if err := publisher.Publish(ctx, docs); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

package cmd

import (
	"context"
	"time"

	"tomato-manager/core/config"
	"tomato-manager/core/logger"
	"tomato-manager/core/storage"
	"tomato-manager/feature/files"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var bootstrapFlag bool

// checkCmd verifies storage connectivity from the CLI without starting the server.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check storage connectivity and bucket state",
	Long: `Connects to the configured object storage endpoint and verifies that the
target bucket is reachable. With --bootstrap the bucket is created if absent,
the same way server startup does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return err
		}

		// CLI output: console encoding regardless of configured format
		logg, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: "console"})
		if err != nil {
			return err
		}
		defer logg.Sync()

		store, err := storage.NewClient(cfg.Minio)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(cfg.Minio.TimeoutSeconds)*time.Second)
		defer cancel()

		if bootstrapFlag {
			svc := files.NewService(store, cfg.Minio, logg, nil)
			if err := svc.EnsureBucket(ctx); err != nil {
				return err
			}
			logg.Info("Bucket ready", zap.String("bucket", cfg.Minio.BucketName))
			return nil
		}

		exists, err := store.BucketExists(ctx, cfg.Minio.BucketName)
		if err != nil {
			return err
		}
		logg.Info("Storage reachable",
			zap.String("endpoint", cfg.Minio.Address()),
			zap.String("bucket", cfg.Minio.BucketName),
			zap.Bool("bucket_exists", exists))
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&bootstrapFlag, "bootstrap", false, "Create the bucket if it does not exist")
	RootCmd.AddCommand(checkCmd)
}

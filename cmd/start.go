package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tomato-manager/core/config"
	"tomato-manager/core/database"
	"tomato-manager/core/loader"
	"tomato-manager/core/logger"
	"tomato-manager/core/middleware/auth"
	"tomato-manager/core/middleware/rayid"
	"tomato-manager/core/storage"

	"tomato-manager/feature/files"
	"tomato-manager/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "tomato-manager/docs/swagger"
)

// @title Tomato Manager Storage API
// @version 1.0
// @description Object storage gateway: upload, URL resolution and deletion.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the storage gateway server",
	Long:  `Starts the HTTP server, bootstraps the storage bucket and loads all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		// The service runs without a ledger when the database is unreachable.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, upload ledger disabled", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to upload ledger database")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Minio)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Initialize the files feature and bootstrap the bucket.
		// A failing bucket check or creation aborts startup.
		feature := files.NewFeature(store, cfg.Minio, logg, db)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Minio.TimeoutSeconds)*time.Second)
		defer cancel()
		if err := feature.Service().EnsureBucket(ctx); err != nil {
			logg.Fatal("Storage unavailable", zap.Error(err))
		}
		logg.Info("Bucket ready", zap.String("bucket", cfg.Minio.BucketName))

		if repo := feature.Service().Repository(); repo != nil {
			if err := repo.Migrate(); err != nil {
				logg.Warn("Ledger migration failed", zap.Error(err))
			}
		}

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(feature)
		mgr.Register(health.NewFeature(store, cfg.Minio.BucketName, logg, db))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

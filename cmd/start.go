package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"basemedia/core/loader"
	"basemedia/core/logger"
	"basemedia/core/middleware/auth"
	"basemedia/core/middleware/rayid"

	"basemedia/feature/basesets"
	"basemedia/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "basemedia/docs/swagger"
)

// @title Base Media Manager API
// @version 1.0
// @description API for discovering and selecting graphics, sound and music base sets.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the base media server",
	Long:  `Scans the media source, selects the active sets and starts the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// 1. Configuration, logger, source and database
		env, err := bootstrap(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		logg := env.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Initial scan. An empty or unreachable source still starts the server.
		if summaries, err := env.sets.Rescan(ctx); err != nil {
			logg.Warn("Initial scan failed", zap.Error(err))
		} else {
			for _, s := range summaries {
				logg.Info("Scanned base sets",
					zap.String("kind", s.Kind),
					zap.Int("added", s.Added),
					zap.Int("replaced", s.Replaced),
					zap.Int("superseded", s.Superseded),
					zap.Int("rejected", s.Rejected),
					zap.String("active", s.Active),
				)
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 3. Features
		mgr := loader.NewManager()
		mgr.Register(basesets.NewFeature(env.sets))
		mgr.Register(integrity.NewFeature(integrity.NewService(env.sets, env.source, env.client, env.bucket(), env.db, logg)))

		// 4. Middleware. RayID first so every log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", env.metrics.Handler())

		if !env.cfg.Server.Protected() {
			logg.Warn("No API key configured, the API is unprotected")
		}
		app.Use(auth.New(auth.Config{ApiKey: env.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Serve
		go func() {
			logg.Info("Starting server", zap.String("port", env.cfg.Server.Port))
			if err := app.Listen(env.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

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

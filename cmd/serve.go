package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"recipe-viewer/core/loader"
	"recipe-viewer/core/logger"
	"recipe-viewer/core/middleware/auth"
	"recipe-viewer/core/middleware/rayid"
	"recipe-viewer/feature/catalog"
	"recipe-viewer/feature/integrity"
	"recipe-viewer/feature/recipes"
	"recipe-viewer/feature/resolver"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "recipe-viewer/docs/swagger"
)

// @title Recipe Viewer API
// @version 1.0
// @description Recipe lookups over a partitioned recipe dataset.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the recipe lookup server",
	Long:  `Starts the HTTP server and initializes all enabled features over the configured dataset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load configuration and logger
		s, err := loadSession()
		if err != nil {
			return err
		}
		logg := s.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Dataset source and the process-wide resolver
		client := s.optionalStorage()
		src, err := s.source(client)
		if err != nil {
			return err
		}
		res := resolver.New(src, logg)

		// 3. Catalog database (optional)
		db := s.optionalDatabase()
		if db != nil {
			if err := catalog.NewService(db, logg).Migrate(); err != nil {
				logg.Warn("Catalog migration failed", zap.Error(err))
			}
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			Prefork:               s.cfg.Server.Prefork,
		})

		// 5. Register Features
		mgr := loader.NewManager()
		mgr.Register(recipes.NewFeature(res, logg))
		mgr.Register(catalog.NewFeature(db, logg))
		mgr.Register(integrity.NewFeature(integrity.NewService(src, client, s.cfg.Storage.Bucket, s.cfg.Data.Prefix, db, logg)))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id
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

		// 3. Public routes: docs and metrics
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		// 4. Auth (everything else)
		app.Use(auth.New(auth.Config{
			ApiKey: s.cfg.Server.ApiKey,
			Public: []string{"/swagger", "/metrics"},
		}))
		if !s.cfg.Server.RequiresAuth() {
			logg.Warn("No API key configured, the API is open")
		}

		// 5. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 6. Start Server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", s.cfg.Server.Port), zap.String("source", s.cfg.Data.Source))
			errCh <- app.Listen(s.cfg.Server.Address())
		}()

		// 7. Graceful Shutdown
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-sig:
		}
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

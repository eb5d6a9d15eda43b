package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"team-inventory/core/config"
	"team-inventory/core/loader"
	"team-inventory/core/logger"
	"team-inventory/core/middleware/auth"
	"team-inventory/core/middleware/rayid"

	"team-inventory/feature/health"
	"team-inventory/feature/inventory"
	"team-inventory/feature/players"
	"team-inventory/feature/roster"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "team-inventory/docs/swagger"
)

// @title Team Inventory API
// @version 1.0
// @description API for tracking team equipment, players and checkouts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the team inventory server",
	Long:  `Restores the last snapshot, starts the HTTP server and loads all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx := context.Background()
		tr, cleanup, err := bootstrap(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to initialize tracker", zap.Error(err))
		}
		defer cleanup()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(health.NewFeature(tr, logg))
		mgr.Register(inventory.NewFeature(tr, logg))
		mgr.Register(players.NewFeature(tr, logg))
		mgr.Register(roster.NewFeature(tr, logg))

		// RayID first so every later log line can carry it
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

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/health"}}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("backend", tr.Backend()),
			)
			if err := app.Listen(cfg.Server.Address()); err != nil {
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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/gift-tracker/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server.

The schema is migrated first when database.autoMigrate is set, and the
administrator account is seeded from admin.username and admin.password.
SIGINT and SIGTERM shut the server down gracefully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host address, overrides configuration")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port, overrides configuration")
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if serverHost != "" {
		a.cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		a.cfg.Server.Port = serverPort
	}

	if a.cfg.Database.AutoMigrate {
		if err := a.migrate(ctx); err != nil {
			return err
		}
	}

	if err := migration.SeedAdministrator(ctx, a.users, a.cfg.Admin.Username, a.cfg.Admin.Password, a.logger); err != nil {
		a.logger.Error("Failed to seed administrator", map[string]any{
			"error": err.Error(),
		})
	}

	metrics.Init(Version, a.cfg.Environment)

	gin.SetMode(a.cfg.Server.Mode)
	router := gin.New()
	routes.SetupMiddlewares(router, a.logger)
	routes.SetupRoutes(router, routes.Handlers{
		Auth:       handler.NewAuthHandler(a.users, a.tokens, a.logger),
		User:       handler.NewUserHandler(a.users, a.logger),
		Event:      handler.NewEventHandler(a.events, a.logger),
		Purchase:   handler.NewPurchaseHandler(a.purchases, a.logger),
		Settlement: handler.NewSettlementHandler(a.settlements, a.logger),
		Health:     handler.NewHealthHandler(a.db, Version, a.logger),
	}, a.tokens, a.users, a.logger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       a.cfg.Server.ReadTimeout,
		WriteTimeout:      a.cfg.Server.WriteTimeout,
		ReadHeaderTimeout: a.cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       a.cfg.Server.IdleTimeout,
		MaxHeaderBytes:    1 << 20,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("Starting server", map[string]any{
			"addr":    server.Addr,
			"version": Version,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			a.logger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			return err
		}
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	a.logger.Info("Server exited gracefully", nil)
	return nil
}

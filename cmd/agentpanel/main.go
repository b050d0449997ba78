// @title			AgentPanel API
// @version		1.0
// @description	Configuration-driven agent platform: agents, menus, forms, workflows and endpoints served over REST.
// @BasePath	/

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/pindexlabs/agentpanel/internal/config"
	"github.com/pindexlabs/agentpanel/internal/database"
	"github.com/pindexlabs/agentpanel/internal/handler"
	"github.com/pindexlabs/agentpanel/internal/logger"
	"github.com/pindexlabs/agentpanel/internal/middleware"
)

func main() {
	app := &cli.App{
		Name:  "agentpanel",
		Usage: "Configuration-driven agent platform",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Usage:   "PostgreSQL database URL (overrides the discrete DB_* settings)",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:    "db-host",
				Usage:   "Database host",
				EnvVars: []string{"DB_HOST"},
			},
			&cli.StringFlag{
				Name:    "db-user",
				Usage:   "Database user",
				EnvVars: []string{"DB_USER"},
			},
			&cli.StringFlag{
				Name:    "db-password",
				Usage:   "Database password",
				EnvVars: []string{"DB_PASSWORD"},
			},
			&cli.StringFlag{
				Name:    "db-database",
				Usage:   "Database name",
				EnvVars: []string{"DB_DATABASE"},
			},
			&cli.StringFlag{
				Name:    "db-port",
				Value:   config.DefaultDBPort,
				Usage:   "Database port",
				EnvVars: []string{"DB_PORT"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
				},
				Action: runServe,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	databaseURL, err := config.DatabaseURL(
		c.String("database-url"),
		c.String("db-host"),
		c.String("db-user"),
		c.String("db-password"),
		c.String("db-database"),
		c.String("db-port"),
	)
	if err != nil {
		return err
	}

	db, err := database.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	h, err := handler.New(db.Pool())
	if err != nil {
		return fmt.Errorf("failed to build handler: %w", err)
	}

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	root := middleware.RequestLog(middleware.Identity(mux))

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           root,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/felixbrock/lemonai/internal/config"
	"github.com/felixbrock/lemonai/internal/database"
	"github.com/felixbrock/lemonai/internal/domain"
	"github.com/felixbrock/lemonai/internal/handler"
	"github.com/felixbrock/lemonai/internal/tailwind"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "Start the web server",
		Flags:  serveFlags(),
		Action: runServe,
	}
}

// serveFlags are registered on both the app and the serve command so that
// a bare invocation serves with the same settings.
func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Value:   config.DefaultPort,
			Usage:   "HTTP server port",
			EnvVars: []string{"GOPORT", "PORT"},
		},
		&cli.BoolFlag{
			Name:    "trust-proxy",
			Usage:   "Treat X-Forwarded-Proto: https as a secure context",
			EnvVars: []string{"TRUST_PROXY"},
		},
		permissionFlag(),
		variantFlag(),
	}
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	permission := c.String("clipboard-permission")
	if permission == "" {
		permission = config.DefaultClipboardPermission
	}
	state, err := domain.ParsePermissionState(permission)
	if err != nil {
		return err
	}

	variant := c.String("variant")
	if variant == "" {
		variant = config.DefaultTailwindVariant
	}
	if _, err := tailwind.ForVariant(tailwind.Variant(variant)); err != nil {
		return err
	}

	databaseURL := c.String("database-url")
	if databaseURL == "" {
		return errors.New("database URL is required: set --database-url or DATABASE_URL")
	}

	db, err := database.Open(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	h, err := handler.New(db.Pool(), handler.Options{
		Permission: state,
		Variant:    tailwind.Variant(variant),
		TrustProxy: c.Bool("trust-proxy"),
	})
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server",
			"server_addr", "http://localhost:"+port,
			"clipboard_permission", string(state),
			"variant", variant,
		)
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

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/felixbrock/lemonai/internal/clipboard"
	"github.com/felixbrock/lemonai/internal/database"
	"github.com/felixbrock/lemonai/internal/domain"
	"github.com/felixbrock/lemonai/internal/repository"
	"github.com/felixbrock/lemonai/internal/service"
)

func copyCommand() *cli.Command {
	return &cli.Command{
		Name:      "copy",
		Usage:     "Copy a file (or stdin) to the system clipboard",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Value:   clipboard.StdinElement,
				Usage:   "File to copy, - for stdin",
			},
			permissionFlag(),
		},
		Action: runCopy,
	}
}

func runCopy(c *cli.Context) error {
	ctx := c.Context

	state, err := domain.ParsePermissionState(c.String("clipboard-permission"))
	if err != nil {
		return err
	}

	permissions, err := clipboard.NewStaticPermissions(state)
	if err != nil {
		return err
	}

	var recorder service.EventRecorder
	if databaseURL := c.String("database-url"); databaseURL != "" {
		db, err := database.Open(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		recorder = repository.NewCopyEventRepository(db.Pool())
	}

	copier := clipboard.NewCopier(permissions, clipboard.NewSystemWriter(), slog.Default())
	svc := service.NewCopyService(copier, recorder)

	event, err := svc.Copy(ctx, clipboard.FileSource{Stdin: os.Stdin}, c.String("source"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(c.App.Writer, "copied %d bytes from %s\n", event.ContentLength, event.SourceID)
	return nil
}

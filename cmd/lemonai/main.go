// @title			lemonai API
// @version		1.0
// @description	Prompt editor backend: permission-gated clipboard copies and Tailwind build descriptors.
// @BasePath		/api/v1

package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/felixbrock/lemonai/internal/config"
	"github.com/felixbrock/lemonai/internal/logger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lemonai",
		Usage: "Prompt editor with clipboard copy and Tailwind descriptor tooling",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   string(logger.FormatJSON),
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL database URL for the copy history",
				EnvVars: []string{"DATABASE_URL"},
			},
		}, serveFlags()...),
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")), logger.ParseFormat(c.String("log-format")))
			return nil
		},
		Commands: []*cli.Command{
			serveCommand(),
			copyCommand(),
			tailwindCommand(),
		},
		Action: runServe,
	}
}

func permissionFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "clipboard-permission",
		Value:   config.DefaultClipboardPermission,
		Usage:   "Clipboard-write permission state (granted, prompt, denied)",
		EnvVars: []string{"CLIPBOARD_PERMISSION"},
	}
}

func variantFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "variant",
		Value:   config.DefaultTailwindVariant,
		Usage:   "Tailwind descriptor variant (components, components-wide, templates)",
		EnvVars: []string{"TAILWIND_VARIANT"},
	}
}

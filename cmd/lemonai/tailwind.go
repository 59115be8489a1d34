package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/felixbrock/lemonai/internal/tailwind"
)

func tailwindCommand() *cli.Command {
	return &cli.Command{
		Name:  "tailwind",
		Usage: "Render tailwind.config.js for a descriptor variant",
		Flags: []cli.Flag{
			variantFlag(),
			&cli.StringFlag{
				Name:  "options",
				Usage: "YAML file with descriptor overrides (content, spacing_fractions, font, colors, plugins)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "Output file, - for stdout",
			},
			&cli.StringFlag{
				Name:  "root",
				Value: ".",
				Usage: "Project root the content globs are relative to",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Fail if a content glob matches no file under --root",
			},
		},
		Action: runTailwind,
	}
}

func runTailwind(c *cli.Context) error {
	opts, err := tailwind.VariantOptions(tailwind.Variant(c.String("variant")))
	if err != nil {
		return err
	}

	if path := c.String("options"); path != "" {
		opts, err = tailwind.LoadOptions(path, opts)
		if err != nil {
			return err
		}
	}

	d := tailwind.New(opts)
	if err := d.Validate(); err != nil {
		return err
	}

	if c.Bool("check") {
		unmatched, err := d.CheckContent(os.DirFS(c.String("root")))
		if err != nil {
			return err
		}
		if len(unmatched) > 0 {
			return cli.Exit(fmt.Sprintf("content globs match no files: %s", strings.Join(unmatched, ", ")), 1)
		}
	}

	var buf bytes.Buffer
	if err := d.RenderJS(&buf); err != nil {
		return err
	}

	output := c.String("output")
	if output == "" || output == "-" {
		_, err := c.App.Writer.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	return nil
}

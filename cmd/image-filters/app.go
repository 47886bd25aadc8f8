package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ironsheep/image-filters/internal/config"
	"github.com/ironsheep/image-filters/internal/console"
	"github.com/ironsheep/image-filters/internal/filter"
	"github.com/ironsheep/image-filters/internal/imaging"
	"github.com/ironsheep/image-filters/internal/preview"
	"github.com/ironsheep/image-filters/internal/server"
)

// newApp builds the command tree. Flags default to the environment.
func newApp() *cli.App {
	cfg := config.FromEnv()

	return &cli.App{
		Name:    "image-filters",
		Usage:   "Apply photo filters interactively, from the command line, or over MCP",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "resources",
				Usage:       "directory holding " + filter.HaloFile + " and " + filter.GrainFile,
				Value:       cfg.ResourceDir,
				Destination: &cfg.ResourceDir,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "debug, info, warn or error",
				Value:       cfg.LogLevel,
				Destination: &cfg.LogLevel,
			},
		},
		Before: func(*cli.Context) error {
			configureLogging(cfg)
			return nil
		},
		Action: func(c *cli.Context) error {
			return runConsole(c, cfg)
		},
		Commands: []*cli.Command{
			{
				Name:  "console",
				Usage: "Interactive command loop (default)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "preview",
						Usage:       "write an 800px high PNG preview here after every change",
						Value:       cfg.PreviewPath,
						Destination: &cfg.PreviewPath,
					},
				},
				Action: func(c *cli.Context) error {
					return runConsole(c, cfg)
				},
			},
			{
				Name:      "apply",
				Usage:     "Apply one filter to an image file",
				ArgsUsage: "INPUT OUTPUT",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "filter",
						Aliases:  []string{"f"},
						Usage:    "filter name, see 'image-filters filters'",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "value",
						Usage: "filter argument for hue, saturation, lightness and the add- variants",
					},
				},
				Action: func(c *cli.Context) error {
					return runApply(c, cfg)
				},
			},
			{
				Name:  "filters",
				Usage: "List available filters",
				Action: func(c *cli.Context) error {
					for _, op := range filter.Ops() {
						if op.Param != nil {
							fmt.Fprintf(c.App.Writer, "%-16s %s (%s %g..%g)\n", op.Name, op.Description, op.Param.Name, op.Param.Min, op.Param.Max)
						} else {
							fmt.Fprintf(c.App.Writer, "%-16s %s\n", op.Name, op.Description)
						}
					}
					return nil
				},
			},
			{
				Name:  "mcp",
				Usage: "Serve the filters as MCP tools over stdin/stdout",
				Action: func(c *cli.Context) error {
					return server.New(newEngine(cfg)).Run(c.Context)
				},
			},
		},
	}
}

func configureLogging(cfg config.Config) {
	if cfg.SlogLevel() > slog.LevelDebug {
		return
	}
	filter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	log.Printf("Image filters v%s (built %s, commit %s), resources %s", Version, BuildTime, GitCommit, cfg.ResourceDir)
}

func newEngine(cfg config.Config) *filter.Engine {
	return filter.NewEngine(filter.NewDirOverlays(cfg.ResourceDir))
}

func runConsole(c *cli.Context, cfg config.Config) error {
	var renderer preview.Renderer = preview.Nop{}
	if cfg.PreviewPath != "" {
		renderer = preview.NewFileRenderer(cfg.PreviewPath)
	}
	return console.New(c.App.Reader, c.App.Writer, newEngine(cfg), renderer).Run(c.Context)
}

func runApply(c *cli.Context, cfg config.Config) error {
	if c.NArg() != 2 {
		return fmt.Errorf("apply needs INPUT and OUTPUT, got %d arguments", c.NArg())
	}
	in, out := c.Args().Get(0), c.Args().Get(1)

	img, err := imaging.Load(in)
	if err != nil {
		return err
	}
	img, err = newEngine(cfg).Apply(c.Context, c.String("filter"), img, c.Float64("value"))
	if err != nil {
		return err
	}
	if err := imaging.SaveAuto(img, out); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s: %s -> %s (%dx%d)\n", c.String("filter"), in, out, img.Width(), img.Height())
	return nil
}

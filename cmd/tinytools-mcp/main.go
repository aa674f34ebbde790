package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/ironsheep/tinytools-mcp/internal/commands"
	"github.com/ironsheep/tinytools-mcp/internal/logging"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// go install leaves the ldflags unset; fall back to the module build info.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	// A missing .env is fine.
	_ = godotenv.Load()

	var logCloser func()
	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "tinytools-mcp",
		Usage:     "Small developer utilities as MCP tools",
		UsageText: "tinytools-mcp [global options] [command [command options]]",
		Description: `tinytools-mcp serves a collection of tiny tools (color palettes, gradients,
JSON/CSS/CSV formatting, encoders, hashes, UUIDs, passwords, QR codes and a toy
URL shortener) to MCP clients over stdio.

Run with no command to start the server. Configure it in your MCP client
(e.g., Claude Desktop) as a stdio server.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error, fatal, panic, disabled)",
				Sources:     cli.EnvVars("TINYTOOLS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("TINYTOOLS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TINYTOOLS_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "base-url",
				Usage:       "origin used for shortened links (overrides shortener.base_url)",
				Sources:     cli.EnvVars("TINYTOOLS_BASE_URL"),
				Destination: &flags.BaseURL,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logging.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := flags.LoadConfig()
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	serveCmd := commands.NewServeCmd(flags, version)

	app = serveCmd.Register(app)
	app = commands.NewListCmd().Register(app)
	app = commands.NewPaletteCmd().Register(app)
	app = commands.NewMarkdownCmd(flags).Register(app)
	app = commands.NewVersionCmd(build()).Register(app)

	// Serving is the default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'tinytools-mcp --help' for usage", c.Args().First())
		}
		return serveCmd.Run(ctx, c)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

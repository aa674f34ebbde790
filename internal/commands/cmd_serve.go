package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/ironsheep/tinytools-mcp/internal/server"
)

type ServeCmd struct {
	flags   *Flags
	version string
}

// NewServeCmd creates the command that runs the MCP server.
func NewServeCmd(flags *Flags, version string) *ServeCmd {
	return &ServeCmd{flags: flags, version: version}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "serve",
		Usage: "Run the MCP server on stdio (default)",
		Description: `Reads JSON-RPC 2.0 requests from stdin, one per line, and writes responses
to stdout. Logs go to stderr or --log-file.`,
		Action: cmd.Run,
	})

	return app
}

// Run serves until stdin closes or the process is interrupted.
func (cmd *ServeCmd) Run(ctx context.Context, c *cli.Command) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cmd.flags.Config, server.WithVersion(cmd.version))
	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

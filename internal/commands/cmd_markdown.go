package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ironsheep/tinytools-mcp/internal/textfmt"
)

type MarkdownCmd struct {
	flags *Flags
	out   io.Writer

	// flags
	style string
	html  bool
}

// NewMarkdownCmd creates a new markdown command
func NewMarkdownCmd(flags *Flags) *MarkdownCmd {
	return &MarkdownCmd{flags: flags, out: os.Stdout}
}

// Register adds the markdown command to the application
func (cmd *MarkdownCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "markdown",
		Aliases:   []string{"md"},
		Usage:     "Render a Markdown file in the terminal",
		UsageText: "tinytools-mcp markdown <file> [--style dark] [--html]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "style",
				Usage:       "glamour style (dark, light, notty, ...)",
				Value:       "dark",
				Destination: &cmd.style,
			},
			&cli.BoolFlag{
				Name:        "html",
				Usage:       "print HTML instead of terminal output",
				Destination: &cmd.html,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *MarkdownCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one file argument")
	}

	src, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("read markdown: %w", err)
	}
	return cmd.render(string(src))
}

func (cmd *MarkdownCmd) render(src string) error {
	var (
		out string
		err error
	)
	if cmd.html {
		out, err = textfmt.MarkdownToHTML(src)
	} else {
		out, err = textfmt.MarkdownToTerminal(src, cmd.flags.Config.Markdown.TerminalWidth, cmd.style)
	}
	if err != nil {
		return err
	}

	_, err = io.WriteString(cmd.out, out)
	return err
}

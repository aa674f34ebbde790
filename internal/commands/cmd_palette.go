package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/ironsheep/tinytools-mcp/internal/colors"
)

type PaletteCmd struct {
	out io.Writer

	// flags
	export bool
}

// NewPaletteCmd creates a new palette command
func NewPaletteCmd() *PaletteCmd {
	return &PaletteCmd{out: os.Stdout}
}

// Register adds the palette command to the application
func (cmd *PaletteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "palette",
		Usage:     "Print the palette derived from a base color",
		UsageText: "tinytools-mcp palette <#RRGGBB> [--export]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "export",
				Usage:       "print the plain text export instead of swatches",
				Destination: &cmd.export,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PaletteCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one color argument")
	}
	return cmd.render(c.Args().First())
}

func (cmd *PaletteCmd) render(base string) error {
	if !colors.ValidHex(base) {
		return fmt.Errorf("%q is not a #RRGGBB color", base)
	}

	p := colors.GeneratePalette(base)
	if cmd.export {
		_, err := fmt.Fprintln(cmd.out, colors.ExportPaletteText(p))
		return err
	}

	var b strings.Builder
	for _, c := range p {
		fmt.Fprintf(&b, "%s  %-18s %s\n", swatch(c), colors.FormatRGBCSS(c), colors.FormatHSLCSS(c))
	}
	_, err := io.WriteString(cmd.out, b.String())
	return err
}

// swatch renders the hex code on its own color with a readable foreground.
func swatch(c colors.Color) string {
	fg := "#ffffff"
	if c.HSL.L > 55 {
		fg = "#000000"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 2).
		Render(c.Hex)
}

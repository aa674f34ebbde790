package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/ironsheep/tinytools-mcp/internal/server"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	nameStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

type ListCmd struct {
	out io.Writer
}

// NewListCmd creates a new list command
func NewListCmd() *ListCmd {
	return &ListCmd{out: os.Stdout}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List the available tools",
		UsageText: "tinytools-mcp list [query]",
		Description: `Prints the tool catalog grouped by category. An optional query filters
tools by id, title or description, ignoring case.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	query := strings.Join(c.Args().Slice(), " ")
	return cmd.render(query)
}

func (cmd *ListCmd) render(query string) error {
	tools := server.SearchCatalog(query)
	if len(tools) == 0 {
		_, err := fmt.Fprintf(cmd.out, "No tools match %q\n", query)
		return err
	}

	groups := server.GroupByCategory(tools)

	var b strings.Builder
	for _, cat := range server.Categories {
		specs, ok := groups[cat]
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headingStyle.Render(string(cat)))
		b.WriteString("\n")
		for _, s := range specs {
			fmt.Fprintf(&b, "  %s  %s\n", nameStyle.Render(fmt.Sprintf("%-18s", s.ID)), s.Title)
			fmt.Fprintf(&b, "  %s  %s\n", strings.Repeat(" ", 18), mutedStyle.Render(s.Description))
		}
	}

	_, err := io.WriteString(cmd.out, b.String())
	return err
}

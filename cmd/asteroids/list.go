package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available game variants",
	Long: `Shows every registered game variant with the fragmentation mode it
runs with under the current configuration.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

// variant is one row of the list output.
type variant struct {
	ID    string
	Title string
	Mode  string
}

// fragmenter is implemented by games that expose their fragmentation mode.
type fragmenter interface {
	Fragmentation() config.FragmentationMode
}

// variants instantiates every registered game with cfg to report its mode.
func variants(cfg config.AsteroidsConfig) []variant {
	infos := registry.List()
	out := make([]variant, 0, len(infos))
	for _, info := range infos {
		v := variant{ID: info.ID, Title: info.Title, Mode: "-"}
		if g, err := registry.Create(info.ID, registry.Options{Config: cfg}); err == nil {
			if f, ok := g.(fragmenter); ok {
				v.Mode = string(f.Fragmentation())
			}
		}
		out = append(out, v)
	}
	return out
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderVariants lays the variants out as a bordered table.
func renderVariants(vs []variant) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "FRAGMENTATION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, v := range vs {
		t.Row(v.ID, v.Title, v.Mode)
	}
	return t.Render()
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	vs := variants(cfg)
	if len(vs) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println(renderVariants(vs))
	fmt.Println("Run 'asteroids play <id>' to play a variant.")
}

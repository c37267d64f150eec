package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// Renderer converts a Screen buffer to a styled string, painting every cell
// on the stage background.
type Renderer struct {
	background core.Color
	styles     map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer for the given background color.
func NewRenderer(background core.Color) *Renderer {
	return &Renderer{
		background: background,
		styles:     make(map[styleKey]lipgloss.Style),
	}
}

func (r *Renderer) style(fg core.Color) lipgloss.Style {
	k := styleKey{fg: fg, bg: r.background}
	if s, ok := r.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if code := fg.Code(); code != "" {
		s = s.Foreground(lipgloss.Color(code))
	}
	if code := r.background.Code(); code != "" {
		s = s.Background(lipgloss.Color(code))
	}
	r.styles[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

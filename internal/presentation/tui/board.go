package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/switchback/pkg/domain"
	"github.com/aretw0/switchback/pkg/toggle"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme renders boards with an optional color profile.
type Theme struct {
	profile termenv.Profile
}

// NewTheme returns a theme for the given profile. termenv.Ascii disables color.
func NewTheme(p termenv.Profile) Theme {
	return Theme{profile: p}
}

func (t Theme) paint(s, hex string) string {
	return t.profile.String(s).Foreground(t.profile.Color(hex)).String()
}

// Board draws the field of s, one character per cell:
// x token, o raised, . lowered, # wall, E exit (when free).
func (t Theme) Board(s toggle.State) string {
	b := s.Board()
	g := s.Grid()

	var sb strings.Builder
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := toggle.Point{X: x, Y: y}
			switch {
			case p == s.Pos():
				sb.WriteString(t.paint("x", "#facc15"))
			case b.IsWall(p):
				sb.WriteString(t.paint("#", "#6b7280"))
			case p == b.Exit() && !g.At(p):
				sb.WriteString(t.paint("E", "#4ade80"))
			case g.At(p):
				sb.WriteString(t.paint("o", "#f472b6"))
			default:
				sb.WriteString(".")
			}
		}
		if y < g.Height()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Flags renders trigger flags as a compact bit string, e.g. "1010".
func Flags(s toggle.State) string {
	var sb strings.Builder
	for _, set := range s.Flags() {
		if set {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Frame boxes the board with a title describing the step that produced it.
// step 0 denotes the initial state.
func (t Theme) Frame(step int, m domain.Move, s toggle.State) string {
	title := "Start"
	if step > 0 {
		title = fmt.Sprintf("%d. %s", step, m)
	}
	if flags := Flags(s); flags != "" {
		title += " [" + flags + "]"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	return title + "\n" + box.Render(t.Board(s))
}

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aretw0/switchback/internal/catalog"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RunList prints the built-in puzzles with their size and polarity.
func RunList(w io.Writer) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "SIZE", "POLARITY", "TRIGGERS", "DESCRIPTION")

	for _, p := range catalog.List() {
		s, err := p.Build()
		if err != nil {
			return err
		}
		b := s.Board()
		t.Row(
			p.Name,
			fmt.Sprintf("%dx%d", b.Width(), b.Height()),
			b.Polarity().String(),
			strconv.Itoa(len(b.Triggers())),
			p.Description,
		)
	}

	fmt.Fprintln(w, t.String())
	return nil
}

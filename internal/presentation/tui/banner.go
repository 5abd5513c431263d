package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the Switchback ASCII art banner.
func PrintBanner(w io.Writer, p termenv.Profile) {
	// Teal to green, one shade per line
	lines := []struct {
		text  string
		color string
	}{
		{"  ___        _ _      _    _             _   ", "#22d3ee"},
		{" / __|_ __ _(_) |_ __| |_ | |__  __ _ __| |__", "#2dd4bf"},
		{" \\__ \\ V  V / |  _/ _| ' \\| '_ \\/ _` / _| / /", "#34d399"},
		{" |___/\\_/\\_/|_|\\__\\__|_||_|_.__/\\__,_\\__|_\\_\\", "#4ade80"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}

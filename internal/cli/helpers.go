package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/switchback/internal/config"
	"github.com/aretw0/switchback/internal/logging"
	"github.com/aretw0/switchback/pkg/search"
	"github.com/aretw0/switchback/pkg/toggle"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout move listing).
func createLogger(cfg config.Config) (*slog.Logger, error) {
	if cfg.Debug {
		return logging.New(slog.LevelDebug), nil
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if level <= slog.LevelInfo {
		// Info chatter stays out of the way unless asked for
		return logging.NewNop(), nil
	}
	return logging.New(level), nil
}

func createDebugHooks(logger *slog.Logger) search.Hooks[toggle.State] {
	return search.Hooks[toggle.State]{
		OnExpand: func(e *search.Event[toggle.State]) {
			logger.Debug("Expand", "pos", e.State.Pos().String(), "depth", e.Depth, "frontier", e.Frontier)
		},
		OnGenerate: func(e *search.Event[toggle.State]) {
			logger.Debug("Generate", "pos", e.State.Pos().String(), "depth", e.Depth, "visited", e.Visited)
		},
		OnGoal: func(e *search.Event[toggle.State]) {
			logger.Debug("Goal", "depth", e.Depth, "visited", e.Visited)
			logger.Debug("Goal board", "board", "\n"+e.State.String())
		},
		OnExhausted: func(e *search.Event[toggle.State]) {
			logger.Debug("Exhausted", "visited", e.Visited)
		},
		OnTruncated: func(e *search.Event[toggle.State]) {
			logger.Debug("Truncated", "visited", e.Visited, "frontier", e.Frontier)
		},
	}
}

// colorProfile resolves the configured color mode against the writer.
// Auto enables color only when w is a terminal.
func colorProfile(mode string, w io.Writer) termenv.Profile {
	switch strings.ToLower(mode) {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		return termenv.TrueColor
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return termenv.NewOutput(f).EnvColorProfile()
	}
	return termenv.Ascii
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

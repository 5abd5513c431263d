package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/switchback"
	"github.com/aretw0/switchback/internal/catalog"
	"github.com/aretw0/switchback/internal/config"
	"github.com/aretw0/switchback/internal/presentation/tui"
	"github.com/aretw0/switchback/pkg/domain"
	"github.com/aretw0/switchback/pkg/toggle"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// SolveOptions contains the configuration for the solve command.
type SolveOptions struct {
	Puzzle string
	Config config.Config
	Out    io.Writer
}

// loadPuzzle builds the named puzzle with the configured move order.
func loadPuzzle(name string, cfg config.Config) (toggle.State, error) {
	order, err := cfg.MoveOrder()
	if err != nil {
		return toggle.State{}, err
	}
	return catalog.Load(name, order)
}

// createSolver initializes a Solver with standard CLI conventions.
func createSolver(cfg config.Config, reg prometheus.Registerer) (*switchback.Solver, error) {
	logger, err := createLogger(cfg)
	if err != nil {
		return nil, err
	}

	opts := []switchback.Option{
		switchback.WithLogger(logger),
		switchback.WithMaxStates(cfg.MaxStates),
	}
	if cfg.Debug {
		opts = append(opts, switchback.WithLifecycleHooks(createDebugHooks(logger)))
	}
	if reg != nil {
		opts = append(opts, switchback.WithMetrics(reg))
	}
	return switchback.New(opts...), nil
}

// RunSolve solves the named puzzle and prints one move label per line,
// or "no solution". Frames, the markdown report and metrics are opt-in.
func RunSolve(opts SolveOptions) error {
	cfg := opts.Config
	w := opts.Out

	initial, err := loadPuzzle(opts.Puzzle, cfg)
	if err != nil {
		return err
	}

	var reg *prometheus.Registry
	var registerer prometheus.Registerer
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		registerer = reg
	}
	solver, err := createSolver(cfg, registerer)
	if err != nil {
		return err
	}

	sol, res := solver.Run(initial)
	profile := colorProfile(cfg.Color, w)

	switch {
	case cfg.Markdown:
		if err := printReport(w, opts.Puzzle, sol, profile); err != nil {
			return err
		}
	case sol.Stats.Found:
		if cfg.Frames {
			if err := printFrames(w, initial, sol.Moves, profile); err != nil {
				return err
			}
		}
		for _, m := range sol.Moves {
			fmt.Fprintln(w, m)
		}
	case res.Truncated:
		fmt.Fprintln(w, "no solution")
		printSystemMessage(w, "Search stopped after %d states (max_states).", sol.Stats.Visited)
	default:
		fmt.Fprintln(w, "no solution")
	}

	if reg != nil {
		return printMetrics(w, reg)
	}
	return nil
}

func printFrames(w io.Writer, initial toggle.State, moves []domain.Move, profile termenv.Profile) error {
	theme := tui.NewTheme(profile)
	fmt.Fprintln(w, theme.Frame(0, domain.Move{}, initial))

	current := initial
	for i, m := range moves {
		next, ok := current.Apply(m)
		if !ok {
			return fmt.Errorf("%w: step %d (%s)", toggle.ErrIllegalMove, i+1, m)
		}
		fmt.Fprintln(w, theme.Frame(i+1, m, next))
		current = next
	}
	return nil
}

func printReport(w io.Writer, name string, sol switchback.Solution, profile termenv.Profile) error {
	md, err := tui.Report(name, sol.Initial, sol.Moves, sol.Stats)
	if err != nil {
		return err
	}
	render, err := tui.NewRenderer(profile != termenv.Ascii)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := render(md)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Fprint(w, out)
	return nil
}

// printMetrics writes the collected search metrics in text exposition format.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}

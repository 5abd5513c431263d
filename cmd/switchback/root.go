package main

import (
	"fmt"
	"os"

	"github.com/aretw0/switchback/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "switchback",
	Short: "Switchback solves toggle-gate grid puzzles",
	Long: `Switchback finds the shortest move sequence through grid puzzles whose
gates (or platforms) flip every time the token steps next to them.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultFile, "Path to the YAML configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging of search events")
	rootCmd.PersistentFlags().String("color", config.ColorAuto, "Color output: auto, always or never")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

// loadConfig reads the configuration file and applies explicitly set flags over it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Lookup("frames") != nil && flags.Changed("frames") {
		cfg.Frames, _ = flags.GetBool("frames")
	}
	if flags.Lookup("markdown") != nil && flags.Changed("markdown") {
		cfg.Markdown, _ = flags.GetBool("markdown")
	}
	if flags.Lookup("metrics") != nil && flags.Changed("metrics") {
		cfg.Metrics, _ = flags.GetBool("metrics")
	}
	if flags.Lookup("order") != nil && flags.Changed("order") {
		cfg.Order, _ = flags.GetStringSlice("order")
	}
	if flags.Lookup("max-states") != nil && flags.Changed("max-states") {
		cfg.MaxStates, _ = flags.GetInt("max-states")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/switchback"
	"github.com/aretw0/switchback/internal/config"
	"github.com/aretw0/switchback/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of switchback",
	Run: func(cmd *cobra.Command, args []string) {
		if color, _ := cmd.Flags().GetString("color"); color != config.ColorNever {
			tui.PrintBanner(os.Stdout, termenv.NewOutput(os.Stdout).ColorProfile())
		}
		fmt.Printf("switchback version %s\n", strings.TrimSpace(switchback.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

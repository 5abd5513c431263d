package main

import (
	"os"

	"github.com/aretw0/switchback/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in puzzles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunList(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package main

import (
	"os"

	"github.com/aretw0/switchback/internal/catalog"
	"github.com/aretw0/switchback/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:       "graph <puzzle>",
	Short:     "Export the solution path visualization",
	Long:      `Solves the puzzle and outputs a Mermaid diagram (graph TD) of the states along the shortest path.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: catalog.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.RunGraph(os.Stdout, args[0], cfg)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/martinemde/dotgraph/dotparser"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <graph.dot>",
	Short: "Reformat a DOT file canonically",
	Long:  "Parse a DOT file and print it back in canonical form. With -w the file is rewritten in place.",
	Args:  cobra.ExactArgs(1),
	RunE:  formatGraph,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "Write result back to the source file instead of stdout")
	rootCmd.AddCommand(fmtCmd)
}

func formatGraph(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	write, _ := cmd.Flags().GetBool("write")

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading graph file: %w", err)
	}

	graph, err := dotparser.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing graph: %w", err)
	}

	out := graph.String()
	if !write {
		fmt.Print(out)
		return nil
	}

	info, err := os.Stat(args[0])
	if err != nil {
		return fmt.Errorf("stat graph file: %w", err)
	}
	if err := os.WriteFile(args[0], []byte(out), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing graph file: %w", err)
	}
	logger.Info("rewrote", "file", args[0], "bytes", len(out))
	return nil
}

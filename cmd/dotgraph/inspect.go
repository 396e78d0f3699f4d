package main

import (
	"fmt"
	"io"
	"os"

	"github.com/martinemde/dotgraph/dotparser"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <graph.dot>",
	Short: "Parse a DOT file and print its structure",
	Long:  "Parse a DOT file and print a summary of the graph: nodes, edges, subgraphs, and attributes.",
	Args:  cobra.ExactArgs(1),
	RunE:  inspectGraph,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func inspectGraph(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading graph file: %w", err)
	}

	logger.Debug("parsing", "file", args[0], "bytes", len(src))
	graph, err := dotparser.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing graph: %w", err)
	}
	logger.Info("parsed", "name", graph.Name, "nodes", len(graph.Nodes), "edges", len(graph.Edges))

	printGraphSummary(os.Stdout, graph)
	return nil
}

// printGraphSummary prints a structural summary of the parsed graph.
func printGraphSummary(w io.Writer, graph *dotparser.Graph) {
	kind := "graph"
	if graph.Directed {
		kind = "digraph"
	}
	if graph.Strict {
		kind = "strict " + kind
	}
	fmt.Fprintf(w, "%s %q\n", kind, graph.Name)
	fmt.Fprintf(w, "  Nodes: %d\n", len(graph.Nodes))
	fmt.Fprintf(w, "  Edges: %d\n", len(graph.Edges))
	fmt.Fprintf(w, "  Subgraphs: %d\n", len(graph.Subgraphs))

	for _, attr := range graph.Attrs {
		fmt.Fprintf(w, "  %s = %s\n", attr.Key, attr.Value)
	}

	for _, node := range graph.Nodes {
		label := node.ID
		if node.Label != "" {
			label = node.Label
		}
		shape := "ellipse"
		if s, ok := node.Attr("shape"); ok {
			shape = s
		}
		fmt.Fprintf(w, "    - %s [%s] (%s)\n", node.ID, label, shape)
	}

	op := "--"
	if graph.Directed {
		op = "->"
	}
	for i := range graph.Edges {
		e := &graph.Edges[i]
		fmt.Fprintf(w, "    - %s %s %s", e.Src, op, e.Dst)
		if e.Label != "" {
			fmt.Fprintf(w, " [%s]", e.Label)
		}
		fmt.Fprintln(w)
	}

	for i := range graph.Subgraphs {
		sub := &graph.Subgraphs[i]
		name := sub.Name
		if name == "" {
			name = "(anonymous)"
		}
		fmt.Fprintf(w, "    + subgraph %s: %d nodes, %d edges\n", name, len(sub.Nodes), len(sub.Edges))
	}
}

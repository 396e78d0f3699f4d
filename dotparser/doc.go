// Package dotparser implements a parser for the Graphviz DOT language.
//
// The package accepts both directed and undirected graphs, optionally marked
// strict, with the full statement grammar: node statements, chained edge
// statements, attribute default statements (graph/node/edge [...]), top-level
// key=value assignments, ports with compass points, and single-level
// subgraphs. Both // line and /* block */ comments are stripped before
// parsing.
//
// The parser is structured as a hand-rolled recursive-descent parser with
// four layers:
//
//   - Lexer: converts raw bytes into a token stream, stripping comments and
//     whitespace and decoding quoted-string escapes.
//   - Parser: consumes tokens according to the DOT grammar and builds a
//     syntax tree (GraphAST) that mirrors the source closely.
//   - Converter: walks the syntax tree and produces the graph model,
//     expanding edge chains and synthesizing implicitly referenced nodes.
//   - Model types: the output data structures (Graph, Subgraph, Node, Edge,
//     Attr, Port).
//
// Usage:
//
//	graph, err := dotparser.Parse(dotSource)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(graph.Name, len(graph.Nodes), len(graph.Edges))
//
// Callers that need the grammar-shaped intermediate form can use ParseAST
// instead; Convert turns a GraphAST into a Graph and never fails.
package dotparser

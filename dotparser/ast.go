package dotparser

// The syntax tree mirrors the DOT grammar rather than the final graph model:
// edge chains are kept as a single statement, attribute defaults are
// statements in source order, and nothing is deduplicated or synthesized.
// Convert turns a GraphAST into a Graph.

// Stmt is any statement that can appear in a graph body.
type Stmt interface {
	stmtNode()
}

// SimpleStmt is any statement that can appear in a subgraph body. Subgraph
// bodies accept simple statements only; nesting a subgraph inside a subgraph
// is a parse error.
type SimpleStmt interface {
	Stmt
	simpleStmtNode()
}

// PortID is a port specification as written in the source: a record-field
// name, a compass point, or both. Compass holds the raw token ("n", "ne", ...
// or "_"); the converter maps it to the Compass enum.
type PortID struct {
	Name    string
	Compass string
}

// NodeID is a node reference with an optional port.
type NodeID struct {
	ID   string
	Port *PortID
	Pos  Position
}

// AttrTarget selects which defaults an attribute statement applies to.
type AttrTarget int

const (
	TargetGraph AttrTarget = iota
	TargetNode
	TargetEdge
)

func (t AttrTarget) String() string {
	switch t {
	case TargetGraph:
		return "graph"
	case TargetNode:
		return "node"
	case TargetEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// NodeStmt is a node declaration: ID [attrs].
type NodeStmt struct {
	ID    NodeID
	Attrs []Attr
}

func (*NodeStmt) stmtNode()       {}
func (*NodeStmt) simpleStmtNode() {}

// EdgeStmt is an edge chain: A -> B -> C [attrs]. Endpoints has at least two
// entries; the attributes apply to every expanded edge.
type EdgeStmt struct {
	Endpoints []NodeID
	Attrs     []Attr
}

func (*EdgeStmt) stmtNode()       {}
func (*EdgeStmt) simpleStmtNode() {}

// AttrStmt is an attribute default statement: graph|node|edge [attrs].
type AttrStmt struct {
	Target AttrTarget
	Attrs  []Attr
}

func (*AttrStmt) stmtNode()       {}
func (*AttrStmt) simpleStmtNode() {}

// AssignStmt is a bare key=value statement, Graphviz shorthand for setting a
// graph attribute.
type AssignStmt struct {
	Key   string
	Value string
	Pos   Position
}

func (*AssignStmt) stmtNode()       {}
func (*AssignStmt) simpleStmtNode() {}

// SubgraphAST is a subgraph block. Name is empty for anonymous subgraphs.
type SubgraphAST struct {
	Name  string
	Stmts []SimpleStmt
	Pos   Position
}

func (*SubgraphAST) stmtNode() {}

// GraphAST is the parsed form of a complete DOT graph.
type GraphAST struct {
	Strict   bool
	Directed bool
	Name     string // empty when the source omitted the name
	Stmts    []Stmt
}

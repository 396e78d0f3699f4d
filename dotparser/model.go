package dotparser

import "strings"

// Compass is one of the nine compass points an edge can anchor to.
// CompassNone means no compass point was given.
type Compass int

const (
	CompassNone Compass = iota
	CompassN
	CompassNE
	CompassE
	CompassSE
	CompassS
	CompassSW
	CompassW
	CompassNW
	CompassC
)

var compassNames = map[Compass]string{
	CompassN:  "n",
	CompassNE: "ne",
	CompassE:  "e",
	CompassSE: "se",
	CompassS:  "s",
	CompassSW: "sw",
	CompassW:  "w",
	CompassNW: "nw",
	CompassC:  "c",
}

// compassPoints maps source tokens to compass values. "_" is the DOT
// spelling for center.
var compassPoints = map[string]Compass{
	"n":  CompassN,
	"ne": CompassNE,
	"e":  CompassE,
	"se": CompassSE,
	"s":  CompassS,
	"sw": CompassSW,
	"w":  CompassW,
	"nw": CompassNW,
	"c":  CompassC,
	"_":  CompassC,
}

func (c Compass) String() string {
	if name, ok := compassNames[c]; ok {
		return name
	}
	return ""
}

// Attr is a key=value pair. Values are always stored as strings at this
// layer; semantic typing of attribute values belongs to downstream
// validators.
type Attr struct {
	Key   string
	Value string
}

// Port selects a sub-location on a node for an edge endpoint.
type Port struct {
	Name    string
	Compass Compass
}

// IsZero reports whether no port was specified.
func (p Port) IsZero() bool {
	return p.Name == "" && p.Compass == CompassNone
}

// Node is a graph node. Label is extracted from the attribute list during
// conversion and never appears in Attrs. An empty Label means none was set.
type Node struct {
	ID    string
	Label string
	Attrs []Attr
}

// Attr looks up a node attribute by key. The last occurrence wins.
func (n *Node) Attr(key string) (string, bool) {
	return lookupAttr(n.Attrs, key)
}

// Edge is a single directed or undirected edge. LHead and LTail are cluster
// routing hints extracted from the attribute list, like Label.
type Edge struct {
	Src     string
	Dst     string
	SrcPort Port
	DstPort Port
	Label   string
	Attrs   []Attr
	LHead   string
	LTail   string
}

// Attr looks up an edge attribute by key. The last occurrence wins.
func (e *Edge) Attr(key string) (string, bool) {
	return lookupAttr(e.Attrs, key)
}

// Subgraph is a named or anonymous subgraph. A subgraph whose name starts
// with "cluster" is treated as a visual cluster by downstream renderers;
// that is a naming convention, not a distinct type.
type Subgraph struct {
	Name         string
	Nodes        []Node
	Edges        []Edge
	Attrs        []Attr
	NodeDefaults []Attr
	EdgeDefaults []Attr
}

// IsCluster reports whether the subgraph follows the cluster naming
// convention.
func (s *Subgraph) IsCluster() bool {
	return strings.HasPrefix(s.Name, "cluster")
}

// NodeByID returns the subgraph node with the given ID, or nil.
func (s *Subgraph) NodeByID(id string) *Node {
	return nodeByID(s.Nodes, id)
}

// Attr looks up a subgraph attribute by key. The last occurrence wins.
func (s *Subgraph) Attr(key string) (string, bool) {
	return lookupAttr(s.Attrs, key)
}

// Graph is the complete graph model produced by conversion.
type Graph struct {
	Name         string
	Directed     bool
	Strict       bool
	Nodes        []Node
	Edges        []Edge
	Subgraphs    []Subgraph
	Attrs        []Attr
	NodeDefaults []Attr
	EdgeDefaults []Attr
}

// NodeByID returns the top-level node with the given ID, or nil if not found.
// Subgraph nodes live in their own scope and are not searched.
func (g *Graph) NodeByID(id string) *Node {
	return nodeByID(g.Nodes, id)
}

// EdgesFrom returns all top-level edges originating from the given node ID.
func (g *Graph) EdgesFrom(id string) []*Edge {
	var result []*Edge
	for i := range g.Edges {
		if g.Edges[i].Src == id {
			result = append(result, &g.Edges[i])
		}
	}
	return result
}

// EdgesTo returns all top-level edges targeting the given node ID.
func (g *Graph) EdgesTo(id string) []*Edge {
	var result []*Edge
	for i := range g.Edges {
		if g.Edges[i].Dst == id {
			result = append(result, &g.Edges[i])
		}
	}
	return result
}

// Attr looks up a graph-level attribute by key. The last occurrence wins.
func (g *Graph) Attr(key string) (string, bool) {
	return lookupAttr(g.Attrs, key)
}

func nodeByID(nodes []Node, id string) *Node {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
	}
	return nil
}

func lookupAttr(attrs []Attr, key string) (string, bool) {
	for i := len(attrs) - 1; i >= 0; i-- {
		if attrs[i].Key == key {
			return attrs[i].Value, true
		}
	}
	return "", false
}

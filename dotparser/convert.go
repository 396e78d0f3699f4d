package dotparser

// Convert walks a syntax tree and produces the graph model. It is total:
// duplicate node declarations and edges to undeclared nodes are resolved by
// policy, never reported as errors.
//
// The conversion policies:
//
//   - The first declaration of a node ID wins; attributes from a later
//     declaration of the same ID in the same scope are silently dropped.
//   - Edge endpoints that name an undeclared node create an empty node
//     before the edge is appended.
//   - node [...] and edge [...] statements replace the current defaults
//     rather than merging with them, and apply only from the point they
//     appear; they never retroactively touch earlier declarations.
//   - Each subgraph body converts with a fresh accumulator. Nothing declared
//     inside leaks into the parent scope, and parent defaults do not carry in.
func Convert(ast *GraphAST) *Graph {
	acc := newConvState()
	for _, stmt := range ast.Stmts {
		if sub, ok := stmt.(*SubgraphAST); ok {
			acc.subgraphs = append(acc.subgraphs, convertSubgraph(sub))
			continue
		}
		acc.apply(stmt.(SimpleStmt))
	}

	name := ast.Name
	if name == "" {
		name = "G"
	}

	return &Graph{
		Name:         name,
		Directed:     ast.Directed,
		Strict:       ast.Strict,
		Nodes:        acc.nodes,
		Edges:        acc.edges,
		Subgraphs:    acc.subgraphs,
		Attrs:        acc.graphAttrs,
		NodeDefaults: acc.nodeDefaults,
		EdgeDefaults: acc.edgeDefaults,
	}
}

func convertSubgraph(ast *SubgraphAST) Subgraph {
	acc := newConvState()
	for _, stmt := range ast.Stmts {
		acc.apply(stmt)
	}
	return Subgraph{
		Name:         ast.Name,
		Nodes:        acc.nodes,
		Edges:        acc.edges,
		Attrs:        acc.graphAttrs,
		NodeDefaults: acc.nodeDefaults,
		EdgeDefaults: acc.edgeDefaults,
	}
}

// convState accumulates one conversion scope: the top level of the graph or
// a single subgraph body.
type convState struct {
	nodes        []Node
	edges        []Edge
	subgraphs    []Subgraph
	graphAttrs   []Attr
	nodeDefaults []Attr
	edgeDefaults []Attr
	seen         map[string]bool // node IDs declared in this scope
}

func newConvState() *convState {
	return &convState{seen: make(map[string]bool)}
}

func (c *convState) apply(stmt SimpleStmt) {
	switch s := stmt.(type) {
	case *NodeStmt:
		c.applyNode(s)
	case *EdgeStmt:
		c.applyEdge(s)
	case *AttrStmt:
		switch s.Target {
		case TargetGraph:
			c.graphAttrs = append(c.graphAttrs, s.Attrs...)
		case TargetNode:
			c.nodeDefaults = copyAttrs(s.Attrs)
		case TargetEdge:
			c.edgeDefaults = copyAttrs(s.Attrs)
		}
	case *AssignStmt:
		c.graphAttrs = append(c.graphAttrs, Attr{Key: s.Key, Value: s.Value})
	}
}

func (c *convState) applyNode(s *NodeStmt) {
	if c.seen[s.ID.ID] {
		return
	}
	label, rest := extractAttr(s.Attrs, "label")
	c.nodes = append(c.nodes, Node{ID: s.ID.ID, Label: label, Attrs: rest})
	c.seen[s.ID.ID] = true
}

func (c *convState) applyEdge(s *EdgeStmt) {
	// Endpoints of undeclared nodes become empty nodes so edges never
	// dangle.
	for _, ep := range s.Endpoints {
		if !c.seen[ep.ID] {
			c.nodes = append(c.nodes, Node{ID: ep.ID})
			c.seen[ep.ID] = true
		}
	}

	label, rest := extractAttr(s.Attrs, "label")
	lhead, rest := extractAttr(rest, "lhead")
	ltail, rest := extractAttr(rest, "ltail")

	for i := 0; i < len(s.Endpoints)-1; i++ {
		c.edges = append(c.edges, Edge{
			Src:     s.Endpoints[i].ID,
			Dst:     s.Endpoints[i+1].ID,
			SrcPort: convertPort(s.Endpoints[i].Port),
			DstPort: convertPort(s.Endpoints[i+1].Port),
			Label:   label,
			Attrs:   copyAttrs(rest),
			LHead:   lhead,
			LTail:   ltail,
		})
	}
}

func convertPort(p *PortID) Port {
	if p == nil {
		return Port{}
	}
	return Port{Name: p.Name, Compass: compassPoints[p.Compass]}
}

// extractAttr removes every occurrence of key from attrs, returning the last
// occurrence's value and the remaining list. The input is not mutated.
func extractAttr(attrs []Attr, key string) (string, []Attr) {
	var value string
	var rest []Attr
	for _, a := range attrs {
		if a.Key == key {
			value = a.Value
			continue
		}
		rest = append(rest, a)
	}
	return value, rest
}

func copyAttrs(attrs []Attr) []Attr {
	if attrs == nil {
		return nil
	}
	cp := make([]Attr, len(attrs))
	copy(cp, attrs)
	return cp
}

package dotparser

import "strings"

// String renders the graph back to DOT text. The output re-parses to a graph
// with the same structure; attribute order is preserved as stored but the
// rendering is canonical rather than byte-identical to the original source.
func (g *Graph) String() string {
	var sb strings.Builder
	op := "--"
	if g.Directed {
		op = "->"
	}

	if g.Strict {
		sb.WriteString("strict ")
	}
	if g.Directed {
		sb.WriteString("digraph ")
	} else {
		sb.WriteString("graph ")
	}
	if g.Name != "" {
		sb.WriteString(quoteID(g.Name))
		sb.WriteByte(' ')
	}
	sb.WriteString("{\n")

	writeBody(&sb, "  ", g.Attrs, g.NodeDefaults, g.EdgeDefaults, g.Nodes, g.Edges, op)

	for i := range g.Subgraphs {
		writeSubgraph(&sb, "  ", &g.Subgraphs[i], op)
	}

	sb.WriteString("}\n")
	return sb.String()
}

func writeSubgraph(sb *strings.Builder, indent string, s *Subgraph, op string) {
	sb.WriteString(indent)
	if s.Name != "" {
		sb.WriteString("subgraph ")
		sb.WriteString(quoteID(s.Name))
		sb.WriteByte(' ')
	}
	sb.WriteString("{\n")
	writeBody(sb, indent+"  ", s.Attrs, s.NodeDefaults, s.EdgeDefaults, s.Nodes, s.Edges, op)
	sb.WriteString(indent)
	sb.WriteString("}\n")
}

func writeBody(sb *strings.Builder, indent string, graphAttrs, nodeDefaults, edgeDefaults []Attr, nodes []Node, edges []Edge, op string) {
	for _, a := range graphAttrs {
		sb.WriteString(indent)
		sb.WriteString(quoteID(a.Key))
		sb.WriteByte('=')
		sb.WriteString(quoteID(a.Value))
		sb.WriteString(";\n")
	}
	if len(nodeDefaults) > 0 {
		sb.WriteString(indent)
		sb.WriteString("node ")
		writeAttrList(sb, nodeDefaults)
		sb.WriteString(";\n")
	}
	if len(edgeDefaults) > 0 {
		sb.WriteString(indent)
		sb.WriteString("edge ")
		writeAttrList(sb, edgeDefaults)
		sb.WriteString(";\n")
	}

	for i := range nodes {
		n := &nodes[i]
		sb.WriteString(indent)
		sb.WriteString(quoteID(n.ID))
		attrs := n.Attrs
		if n.Label != "" {
			attrs = append([]Attr{{Key: "label", Value: n.Label}}, attrs...)
		}
		if len(attrs) > 0 {
			sb.WriteByte(' ')
			writeAttrList(sb, attrs)
		}
		sb.WriteString(";\n")
	}

	for i := range edges {
		e := &edges[i]
		sb.WriteString(indent)
		writeEndpoint(sb, e.Src, e.SrcPort)
		sb.WriteByte(' ')
		sb.WriteString(op)
		sb.WriteByte(' ')
		writeEndpoint(sb, e.Dst, e.DstPort)

		// Extracted fields go back inline ahead of the generic attributes.
		var attrs []Attr
		if e.Label != "" {
			attrs = append(attrs, Attr{Key: "label", Value: e.Label})
		}
		if e.LHead != "" {
			attrs = append(attrs, Attr{Key: "lhead", Value: e.LHead})
		}
		if e.LTail != "" {
			attrs = append(attrs, Attr{Key: "ltail", Value: e.LTail})
		}
		attrs = append(attrs, e.Attrs...)
		if len(attrs) > 0 {
			sb.WriteByte(' ')
			writeAttrList(sb, attrs)
		}
		sb.WriteString(";\n")
	}
}

func writeEndpoint(sb *strings.Builder, id string, port Port) {
	sb.WriteString(quoteID(id))
	if port.Name != "" {
		sb.WriteByte(':')
		sb.WriteString(quotePortName(port.Name))
	}
	if port.Compass != CompassNone {
		sb.WriteByte(':')
		sb.WriteString(port.Compass.String())
	}
}

func writeAttrList(sb *strings.Builder, attrs []Attr) {
	sb.WriteByte('[')
	for i, a := range attrs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(quoteID(a.Key))
		sb.WriteByte('=')
		sb.WriteString(quoteID(a.Value))
	}
	sb.WriteByte(']')
}

// quotePortName quotes like quoteID, except that a name spelling a compass
// token must always quote: emitted bare after ':' it would re-parse as the
// compass point instead of a name.
func quotePortName(s string) string {
	if _, ok := compassPoints[s]; ok {
		return `"` + s + `"`
	}
	return quoteID(s)
}

// quoteID returns s unchanged when it can stand bare as a DOT ID (an
// identifier that is not a keyword, or a number), and a quoted, escaped form
// otherwise. The empty string always quotes.
func quoteID(s string) string {
	if isBareIdentifier(s) || isNumeric(s) {
		return s
	}
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteByte(s[i])
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func isBareIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if _, isKeyword := keywords[s]; isKeyword {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == 0 && !isIdentStart(s[i]) {
			return false
		}
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	sawDigit := false
	for i < len(s) && isDigit(s[i]) {
		i++
		sawDigit = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			sawDigit = true
		}
	}
	return sawDigit && i == len(s)
}

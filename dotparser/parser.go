package dotparser

import "fmt"

// Parse parses DOT source text and returns the graph model.
// Returns a *SyntaxError or *LexError on failure.
func Parse(src []byte) (*Graph, error) {
	ast, err := ParseAST(src)
	if err != nil {
		return nil, err
	}
	return Convert(ast), nil
}

// ParseAST parses DOT source text and returns the syntax tree without
// converting it to the graph model.
func ParseAST(src []byte) (*GraphAST, error) {
	p := &parser{lex: NewLexer(src)}
	return p.parseGraph()
}

type parser struct {
	lex      *Lexer
	directed bool
}

func (p *parser) peek() (Token, error) {
	return p.lex.Peek()
}

func (p *parser) next() (Token, error) {
	return p.lex.Next()
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, p.syntaxError(tok, kind.String())
	}
	return tok, nil
}

func (p *parser) syntaxError(tok Token, expected string) *SyntaxError {
	return &SyntaxError{
		ParseError: ParseError{Pos: tok.Pos},
		Expected:   expected,
		Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
	}
}

// isIDToken reports whether a token can serve as an ID: a bare identifier, a
// quoted string, or a number (numbers are valid IDs in DOT).
func isIDToken(tok Token) bool {
	return tok.Kind == TokenIdentifier || tok.Kind == TokenString || tok.Kind == TokenNumber
}

// parseGraph parses: ['strict'] ('graph'|'digraph') [ID] '{' stmt-list '}' EOF
func (p *parser) parseGraph() (*GraphAST, error) {
	g := &GraphAST{}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenStrict {
		g.Strict = true
		tok, err = p.next()
		if err != nil {
			return nil, err
		}
	}

	switch tok.Kind {
	case TokenDigraph:
		g.Directed = true
	case TokenGraph:
		g.Directed = false
	default:
		return nil, p.syntaxError(tok, "'graph' or 'digraph'")
	}
	p.directed = g.Directed

	// Optional graph name
	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if isIDToken(tok) {
		nameTok, _ := p.next()
		g.Name = nameTok.Literal
	}

	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}

	g.Stmts, err = p.parseStmtList()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}

	// Trailing content after the closing brace is a parse error.
	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, p.syntaxError(tok, "EOF")
	}

	return g, nil
}

// parseStmtList parses statements until '}' or EOF. Separators (';' or ',')
// between statements are optional and stray separators are skipped.
func (p *parser) parseStmtList() ([]Stmt, error) {
	var stmts []Stmt
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenRBrace, TokenEOF:
			return stmts, nil
		case TokenSemicolon, TokenComma:
			_, _ = p.next()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// parseStatement dispatches on the first token. Subgraphs are tried first: a
// bare '{' cannot start any simple statement.
func (p *parser) parseStatement() (Stmt, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenSubgraph || tok.Kind == TokenLBrace {
		return p.parseSubgraph()
	}
	return p.parseSimpleStatement()
}

func (p *parser) parseSimpleStatement() (SimpleStmt, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokenGraph:
		return p.parseAttrStmt(TargetGraph)
	case TokenNode:
		return p.parseAttrStmt(TargetNode)
	case TokenEdge:
		return p.parseAttrStmt(TargetEdge)
	case TokenIdentifier, TokenString, TokenNumber:
		return p.parseIDStatement()
	default:
		return nil, p.syntaxError(tok, "statement")
	}
}

// parseAttrStmt parses: ('graph'|'node'|'edge') attr-list
func (p *parser) parseAttrStmt(target AttrTarget) (*AttrStmt, error) {
	_, _ = p.next() // consume keyword

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenLBracket {
		return nil, p.syntaxError(tok, "'['")
	}

	attrs, err := p.parseAttrLists()
	if err != nil {
		return nil, err
	}
	return &AttrStmt{Target: target, Attrs: attrs}, nil
}

// parseIDStatement handles a statement starting with an ID. It can be a
// node statement, an edge statement, or a key=value assignment. The edge
// operator continuation must be tried before concluding a bare node
// statement, since "A" and "A -> B" share the same prefix.
func (p *parser) parseIDStatement() (SimpleStmt, error) {
	id, err := p.parseNodeID()
	if err != nil {
		return nil, err
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	if tok.Kind == TokenEquals && id.Port == nil {
		_, _ = p.next() // consume '='
		valTok, err := p.next()
		if err != nil {
			return nil, err
		}
		if !isIDToken(valTok) {
			return nil, p.syntaxError(valTok, "attribute value")
		}
		return &AssignStmt{Key: id.ID, Value: valTok.Literal, Pos: id.Pos}, nil
	}

	if tok.Kind == TokenArrow || tok.Kind == TokenDashDash {
		return p.parseEdgeChain(id)
	}

	attrs, err := p.parseAttrLists()
	if err != nil {
		return nil, err
	}
	return &NodeStmt{ID: id, Attrs: attrs}, nil
}

// parseEdgeChain parses: op node-id (op node-id)* attr-list? where op is '->'
// in directed graphs and '--' in undirected ones. The mismatched operator is
// rejected.
func (p *parser) parseEdgeChain(first NodeID) (*EdgeStmt, error) {
	op := TokenDashDash
	if p.directed {
		op = TokenArrow
	}

	endpoints := []NodeID{first}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenArrow && tok.Kind != TokenDashDash {
			break
		}
		if tok.Kind != op {
			return nil, p.syntaxError(tok, op.String())
		}
		_, _ = p.next() // consume operator

		target, err := p.parseNodeID()
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, target)
	}

	attrs, err := p.parseAttrLists()
	if err != nil {
		return nil, err
	}
	return &EdgeStmt{Endpoints: endpoints, Attrs: attrs}, nil
}

// parseNodeID parses: ID [':' port-or-compass [':' compass]]
func (p *parser) parseNodeID() (NodeID, error) {
	tok, err := p.next()
	if err != nil {
		return NodeID{}, err
	}
	if !isIDToken(tok) {
		return NodeID{}, p.syntaxError(tok, "node identifier")
	}

	id := NodeID{ID: tok.Literal, Pos: tok.Pos}

	next, err := p.peek()
	if err != nil {
		return NodeID{}, err
	}
	if next.Kind != TokenColon {
		return id, nil
	}
	_, _ = p.next() // consume ':'

	port, err := p.parsePort()
	if err != nil {
		return NodeID{}, err
	}
	id.Port = port
	return id, nil
}

// parsePort parses the remainder of a port after the first ':'. A single
// identifier matching a compass token is a compass point, unless a second
// ':compass' follows, in which case the first identifier is the port name.
func (p *parser) parsePort() (*PortID, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if !isIDToken(tok) {
		return nil, p.syntaxError(tok, "port name or compass point")
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if next.Kind != TokenColon {
		// Bare identifiers matching a compass token mean the compass point;
		// quoted strings always mean a port name.
		if tok.Kind == TokenIdentifier {
			if _, ok := compassPoints[tok.Literal]; ok {
				return &PortID{Compass: tok.Literal}, nil
			}
		}
		return &PortID{Name: tok.Literal}, nil
	}

	_, _ = p.next() // consume second ':'
	compassTok, err := p.next()
	if err != nil {
		return nil, err
	}
	if compassTok.Kind != TokenIdentifier {
		return nil, p.syntaxError(compassTok, "compass point")
	}
	if _, ok := compassPoints[compassTok.Literal]; !ok {
		return nil, p.syntaxError(compassTok, "compass point")
	}
	return &PortID{Name: tok.Literal, Compass: compassTok.Literal}, nil
}

// parseSubgraph parses: ['subgraph' [ID]] '{' simple-stmt-list '}'
// Subgraph bodies accept simple statements only.
func (p *parser) parseSubgraph() (*SubgraphAST, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	sub := &SubgraphAST{Pos: tok.Pos}

	if tok.Kind == TokenSubgraph {
		_, _ = p.next()
		nameTok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if isIDToken(nameTok) {
			_, _ = p.next()
			sub.Name = nameTok.Literal
		}
	}

	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenRBrace || tok.Kind == TokenEOF {
			break
		}
		if tok.Kind == TokenSemicolon || tok.Kind == TokenComma {
			_, _ = p.next()
			continue
		}
		if tok.Kind == TokenSubgraph || tok.Kind == TokenLBrace {
			return nil, p.syntaxError(tok, "node, edge, or attribute statement")
		}
		stmt, err := p.parseSimpleStatement()
		if err != nil {
			return nil, err
		}
		sub.Stmts = append(sub.Stmts, stmt)
	}

	if _, err := p.expect(TokenRBrace); err != nil {
		return nil, err
	}
	return sub, nil
}

// parseAttrLists parses zero or more bracketed attribute groups, which
// concatenate: [a=b][c=d] is the same as [a=b, c=d].
func (p *parser) parseAttrLists() ([]Attr, error) {
	var attrs []Attr
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenLBracket {
			return attrs, nil
		}
		group, err := p.parseAttrBlock()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, group...)
	}
}

// parseAttrBlock parses: '[' (key '=' value (','|';')?)* ']'
// Separators between pairs are optional; whitespace alone is enough.
func (p *parser) parseAttrBlock() ([]Attr, error) {
	if _, err := p.expect(TokenLBracket); err != nil {
		return nil, err
	}

	var attrs []Attr
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind == TokenRBracket:
			_, _ = p.next()
			return attrs, nil
		case tok.Kind == TokenComma || tok.Kind == TokenSemicolon:
			_, _ = p.next()
		case isIDToken(tok):
			keyTok, _ := p.next()
			if _, err := p.expect(TokenEquals); err != nil {
				return nil, err
			}
			valTok, err := p.next()
			if err != nil {
				return nil, err
			}
			if !isIDToken(valTok) {
				return nil, p.syntaxError(valTok, "attribute value")
			}
			attrs = append(attrs, Attr{Key: keyTok.Literal, Value: valTok.Literal})
		default:
			return nil, p.syntaxError(tok, "']'")
		}
	}
}

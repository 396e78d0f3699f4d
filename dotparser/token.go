package dotparser

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdentifier // [A-Za-z_][A-Za-z0-9_]*
	TokenString     // "..." with escape processing
	TokenNumber     // -?[0-9]*.?[0-9]+ (raw text preserved)
	TokenArrow      // ->
	TokenDashDash   // --
	TokenLBrace     // {
	TokenRBrace     // }
	TokenLBracket   // [
	TokenRBracket   // ]
	TokenEquals     // =
	TokenComma      // ,
	TokenSemicolon  // ;
	TokenColon      // :

	// Keywords (identifier text checked against keyword map)
	TokenStrict   // strict
	TokenDigraph  // digraph
	TokenGraph    // graph
	TokenNode     // node
	TokenEdge     // edge
	TokenSubgraph // subgraph
)

var tokenNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenIdentifier: "identifier",
	TokenString:     "string",
	TokenNumber:     "number",
	TokenArrow:      "'->'",
	TokenDashDash:   "'--'",
	TokenLBrace:     "'{'",
	TokenRBrace:     "'}'",
	TokenLBracket:   "'['",
	TokenRBracket:   "']'",
	TokenEquals:     "'='",
	TokenComma:      "','",
	TokenSemicolon:  "';'",
	TokenColon:      "':'",
	TokenStrict:     "'strict'",
	TokenDigraph:    "'digraph'",
	TokenGraph:      "'graph'",
	TokenNode:       "'node'",
	TokenEdge:       "'edge'",
	TokenSubgraph:   "'subgraph'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // text content (decoded for strings, raw for others)
	Pos     Position
}

// keywords maps keyword strings to their token kinds. The match is exact and
// case sensitive; "Node" or "nodeX" remain plain identifiers.
var keywords = map[string]TokenKind{
	"strict":   TokenStrict,
	"digraph":  TokenDigraph,
	"graph":    TokenGraph,
	"node":     TokenNode,
	"edge":     TokenEdge,
	"subgraph": TokenSubgraph,
}

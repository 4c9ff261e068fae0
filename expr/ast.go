// Package expr declares the boundary with the expression parsing engine.
//
// The engine itself lives elsewhere. The bridge only needs the handle type
// that pairs a parsed tree with the text it came from, and the three parser
// entry points used to rebuild trees on the receiving side.
package expr

// AST is a parsed expression tree. Its structure belongs to the parser.
type AST interface {
	String() string
}

// ASTWithSource pairs a tree with its source text and location.
// Only Source and Location cross the bridge; AST is rebuilt by re-parsing.
type ASTWithSource struct {
	AST      AST
	Source   string
	Location string
}

func (a *ASTWithSource) String() string {
	if a == nil {
		return "<nil>"
	}
	return a.Source + " in " + a.Location
}

// Parser is the subset of the expression parser used by the bridge.
// Implementations may keep state; the bridge never constructs one.
type Parser interface {
	ParseInterpolation(input, location string) (*ASTWithSource, error)
	ParseBinding(input, location string) (*ASTWithSource, error)
	ParseSimpleBinding(input, location string) (*ASTWithSource, error)
}

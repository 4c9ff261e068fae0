package expr

// Source is an unparsed expression kept as text.
type Source struct {
	Text string
}

func (s Source) String() string { return s.Text }

// SourceParser satisfies Parser without parsing anything: every entry point
// wraps the input in a Source node. Useful for tools that inspect bridge
// messages without linking the real engine.
type SourceParser struct{}

func NewSourceParser() *SourceParser {
	return &SourceParser{}
}

func (p *SourceParser) ParseInterpolation(input, location string) (*ASTWithSource, error) {
	return wrap(input, location), nil
}

func (p *SourceParser) ParseBinding(input, location string) (*ASTWithSource, error) {
	return wrap(input, location), nil
}

func (p *SourceParser) ParseSimpleBinding(input, location string) (*ASTWithSource, error) {
	return wrap(input, location), nil
}

func wrap(input, location string) *ASTWithSource {
	return &ASTWithSource{
		AST:      Source{Text: input},
		Source:   input,
		Location: location,
	}
}

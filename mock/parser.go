package mock

import "github.com/fwojciec/pith"

var _ pith.Parser = (*Parser)(nil)

// Parser is a mock implementation of pith.Parser.
type Parser struct {
	ParseFn func(markup string) (pith.Document, error)
}

func (p *Parser) Parse(markup string) (pith.Document, error) {
	return p.ParseFn(markup)
}

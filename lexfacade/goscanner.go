package lexfacade

import (
	"fmt"
	"io"
	tscan "text/scanner"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lalr.lexfacade'.
func tracer() tracing.Trace {
	return tracing.Select("lalr.lexfacade")
}

// SymbolMapper translates a text/scanner token rune (an ASCII literal, or
// one of text/scanner's negative category constants such as tscan.Ident)
// into the grammar-symbol index the driving StateMachine knows it by.
// Unrecognized runes should map to some "unknown" symbol the grammar
// itself rejects — GoScanner does not guess.
type SymbolMapper func(tok rune) int

// GoScanner is a Lexer façade backed by the standard library's
// text/scanner, grounded on lr/scanner/scanner.go's DefaultTokenizer. It
// satisfies the Lexer contract package parser depends on, but not
// parser.LexerActionBinder: text/scanner classifies tokens by rune/category
// (an ASCII literal or one of its Ident/Int/Float/... constants), not by a
// named rule, so there is no identifier for a caller to hook by. Lexers
// built from named rules (lexfacade/lexmach's lexmachine-backed Scanner)
// implement the binder instead.
type GoScanner struct {
	scan      tscan.Scanner
	symbolFor SymbolMapper
	endSymbol int

	cur      rune
	full     bool
	onLexErr func(error)
}

// NewGoScanner creates a façade translating scanned tokens via symbolFor;
// endSymbol is reported once the input is exhausted.
func NewGoScanner(symbolFor SymbolMapper, endSymbol int) *GoScanner {
	return &GoScanner{symbolFor: symbolFor, endSymbol: endSymbol}
}

// SetErrorHandler installs a handler lexer errors are forwarded to. Lexer
// errors are orthogonal to parser errors (§7 of the design this follows):
// the façade keeps advancing with whatever token text/scanner recovers to.
func (g *GoScanner) SetErrorHandler(h func(error)) {
	g.onLexErr = h
}

// Reset rebinds the façade to a new input range, as read from r.
func (g *GoScanner) Reset(r io.Reader, sourceID string) {
	g.scan = tscan.Scanner{}
	g.scan.Init(r)
	g.scan.Filename = sourceID
	g.scan.Error = func(_ *tscan.Scanner, msg string) {
		err := fmt.Errorf("%s: %s", sourceID, msg)
		if g.onLexErr != nil {
			g.onLexErr(err)
		} else {
			tracer().Errorf("lexer error: %v", err)
		}
	}
	g.cur = 0
	g.full = false
}

// Advance moves to the next token. A no-op once Full() is true.
func (g *GoScanner) Advance() {
	if g.full {
		return
	}
	g.cur = g.scan.Scan()
	if g.cur == tscan.EOF {
		g.full = true
	}
}

// Symbol returns the current token's grammar-symbol index; equal to the
// end symbol once the input is fully consumed.
func (g *GoScanner) Symbol() int {
	if g.full {
		return g.endSymbol
	}
	return g.symbolFor(g.cur)
}

// Lexeme returns the current token's text.
func (g *GoScanner) Lexeme() string {
	return g.scan.TokenText()
}

// Position returns the current input offset.
func (g *GoScanner) Position() uint64 {
	return uint64(g.scan.Position.Offset)
}

// Full reports whether all input has been consumed.
func (g *GoScanner) Full() bool {
	return g.full
}

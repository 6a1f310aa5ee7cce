package parser

import "io"

// Lexer is the minimal contract package parser depends on for a companion
// token source. Implementations live in package lexfacade; the lexer's
// internal DFA and token classification are out of scope here.
type Lexer interface {
	// Reset rebinds the lexer to a new input range.
	Reset(r io.Reader, sourceID string)
	// Advance moves to the next token. May be a no-op at end-of-input.
	Advance()
	// Symbol returns the current token's grammar-symbol index; equals the
	// state machine's end symbol once all input has been consumed.
	Symbol() int
	// Lexeme returns the current token's text.
	Lexeme() string
	// Position returns the current input position.
	Position() uint64
	// Full reports whether the lexer has consumed all of its input.
	Full() bool
}

// LexerActionBinder is an optional capability a Lexer may implement: a
// lexer whose tokens are produced by named rules (e.g. lexfacade/lexmach's
// lexmachine-backed Scanner, where every pattern is registered under a
// token name) can fire a callback whenever it recognizes a token of that
// name, independent of and prior to any grammar-level reduction.
//
// The callback is declared as the unnamed function type func(lexeme
// string) rather than a named type, so that implementations (package
// lexfacade and its subpackages) never need to import package parser just
// to reference the callback's type — Go's interface satisfaction is
// structural, but only for identical unnamed signatures.
type LexerActionBinder interface {
	// SetLexerActionHandler binds fn to fire whenever the lexer recognizes
	// a token registered under identifier. Unknown identifiers are a
	// silent no-op, matching SetActionHandler's convention.
	SetLexerActionHandler(identifier string, fn func(lexeme string))
}

package lalr

import "fmt"

// Span captures a length of input a terminal or nonterminal covers: a start
// position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 { return s[0] }

// To returns the end value of a span.
func (s Span) To() uint64 { return s[1] }

// Len returns the length of (x…y).
func (s Span) Len() uint64 { return s[1] - s[0] }

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// Token is the contract a companion lexer's current token must satisfy. It
// is produced by a Lexer façade (package lexfacade) and consumed by the
// driver (package parser).
type Token interface {
	// Symbol is the grammar symbol handle of this token, as known to the
	// StateMachine the parser was constructed with.
	Symbol() int
	// Lexeme is the token's text as it appeared in the input.
	Lexeme() string
	// Position is the input position this token starts at.
	Position() uint64
}

// ErrorCode identifies the kind of notification delivered through an
// ErrorPolicy's OnError hook (see package errpolicy).
type ErrorCode int

const (
	// ErrSyntax reports that no transition existed for a lookahead, so
	// error recovery began. It is reported once per recovery episode,
	// whether or not recovery then manages to shift the error symbol.
	ErrSyntax ErrorCode = iota + 1
	// ErrUnexpected reports an impossible transition kind encountered
	// during error recovery, or a missing GOTO transition after a
	// reduction — indicative of a corrupt or hand-edited state machine.
	ErrUnexpected
)

func (c ErrorCode) String() string {
	switch c {
	case ErrSyntax:
		return "PARSER_ERROR_SYNTAX"
	case ErrUnexpected:
		return "PARSER_ERROR_UNEXPECTED"
	default:
		return "PARSER_ERROR_UNKNOWN"
	}
}

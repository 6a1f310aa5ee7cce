package errpolicy

import "github.com/trumae/lalr"

// HandleFrame is one frame of a reduction's handle, as reported in a
// ReduceEvent: the frame's symbol name and lexeme (lexeme is empty for
// nonterminal frames).
type HandleFrame struct {
	Symbol string
	Lexeme string
}

// Event is the structured replacement for the source's variadic printf
// debug formatting (Design Notes, point 3): a ShiftEvent or ReduceEvent,
// reported only while debug tracing is enabled.
type Event interface {
	isTraceEvent()
}

// ShiftEvent reports that the driver shifted a terminal.
type ShiftEvent struct {
	Symbol string
	Lexeme string
}

func (ShiftEvent) isTraceEvent() {}

// ReduceEvent reports that the driver reduced a handle to a nonterminal.
type ReduceEvent struct {
	Reduced string
	Handle  []HandleFrame
}

func (ReduceEvent) isTraceEvent() {}

// ErrorEvent reports a parser error: a syntax error that started recovery
// (lalr.ErrSyntax) or a corrupt state machine (lalr.ErrUnexpected).
type ErrorEvent struct {
	Code    lalr.ErrorCode
	Message string
}

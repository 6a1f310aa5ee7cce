package parser

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/trumae/lalr/action"
	"github.com/trumae/lalr/errpolicy"
	"github.com/trumae/lalr/stack"
	"github.com/trumae/lalr/table"
)

// tracer traces with key 'lalr.parser'.
func tracer() tracing.Trace {
	return tracing.Select("lalr.parser")
}

// RecoveryPolicy selects how the driver behaves when error recovery has
// just shifted an `error` frame and the very next lookahead cannot be
// shifted from the resulting state either (Design Notes, "error-recovery
// subtlety").
type RecoveryPolicy int8

const (
	// ConsumeLookahead is the default (option a): after any action that
	// returns "continue" — a shift or a handled recovery alike — the
	// caller is expected to advance to a fresh lookahead before calling
	// Step again. Recovery never replays the token that caused the
	// error; it is implicitly discarded, which bounds the number of
	// recovery attempts to the number of remaining input tokens.
	ConsumeLookahead RecoveryPolicy = iota
	// PopErrorOnImmediateRefailure is option (b): if Step is re-entered
	// and the stack's top frame is itself an unconsumed `error` frame
	// from the previous call, that frame is popped before a fresh
	// recovery search begins, trading one extra level of unwinding for
	// not relying on the caller to have advanced the lookahead.
	PopErrorOnImmediateRefailure
)

// Parser is a table-driven LALR(1) shift/reduce driver, generic over the
// semantic-value type V synthesized by reduction callbacks.
type Parser[V any] struct {
	sm     *table.StateMachine
	stk    *stack.Stack[V]
	disp   *action.Dispatcher[V]
	policy errpolicy.Policy

	debug    bool
	accepted bool
	rejected bool
	full     bool

	recoveryPolicy  RecoveryPolicy
	justRecovered   bool // top frame is an error frame from the last Step
	errorsThisEpoch bool // unused: recover reports once per call without it

	lex          Lexer // set by Parse; nil for raw Step()-driven use
	lexerActions map[string]func(string)
}

// New constructs a Parser over sm. policy may be nil, in which case debug
// trace falls back to stdout and errors are silently dropped on the floor
// except for the rejected/accepted latches (see Design Notes point 3 and
// §4.7 of the design this follows).
func New[V any](sm *table.StateMachine, policy errpolicy.Policy) *Parser[V] {
	p := &Parser[V]{
		sm:     sm,
		stk:    stack.New[V](sm.StartState),
		disp:   action.NewDispatcher[V](sm.Productions),
		policy: policy,
	}
	return p
}

// Reset truncates the stack back to the sentinel and clears the
// accepted/rejected/full latches. Action bindings persist across resets.
// Calling Reset twice in a row is equivalent to calling it once.
func (p *Parser[V]) Reset() {
	p.stk.Reset(p.sm.StartState)
	p.accepted = false
	p.rejected = false
	p.full = false
	p.justRecovered = false
	p.lex = nil
}

// SetActionHandler binds fn to the production named identifier. Unknown
// identifiers are a silent no-op.
func (p *Parser[V]) SetActionHandler(identifier string, fn action.Handler[V]) {
	p.disp.SetHandler(identifier, fn)
}

// SetDefaultActionHandler installs the fallback invoked when a reduction
// has no bound callback.
func (p *Parser[V]) SetDefaultActionHandler(fn action.Handler[V]) {
	p.disp.SetDefaultHandler(fn)
}

// SetLexerActionHandler binds fn to fire whenever the lexer feeding this
// parser recognizes a token registered under identifier. The binding is
// recorded here and replayed onto whatever Lexer is passed to Parse, so it
// can be set up before a lexer even exists; lexers that don't implement
// LexerActionBinder (e.g. lexfacade.GoScanner, whose raw-rune tokens carry
// no rule identifier to hook by) simply never receive it.
func (p *Parser[V]) SetLexerActionHandler(identifier string, fn func(lexeme string)) {
	if p.lexerActions == nil {
		p.lexerActions = make(map[string]func(string))
	}
	p.lexerActions[identifier] = fn
}

// SetRecoveryPolicy configures error-recovery looping behavior. Defaults
// to ConsumeLookahead.
func (p *Parser[V]) SetRecoveryPolicy(rp RecoveryPolicy) {
	p.recoveryPolicy = rp
}

// SetDebugEnabled enables or disables SHIFT/REDUCE trace emission.
func (p *Parser[V]) SetDebugEnabled(b bool) {
	p.debug = b
}

// IsDebugEnabled reports whether debug trace emission is enabled.
func (p *Parser[V]) IsDebugEnabled() bool {
	return p.debug
}

// Accepted reports whether the most recent parse run accepted its input.
func (p *Parser[V]) Accepted() bool {
	return p.accepted
}

// Full reports whether the lexer consumed all of its input. Only
// meaningful after a call to Parse; if the parser is driven incrementally
// via Step alone, Full retains whatever SetFull last recorded (false by
// default) — this mirrors the source's full_ semantics (Design Notes).
func (p *Parser[V]) Full() bool {
	return p.full
}

// SetFull lets a caller driving the parser incrementally via Step record
// its own notion of "all input consumed".
func (p *Parser[V]) SetFull(b bool) {
	p.full = b
}

// UserData returns the sole remaining frame's synthesized value. Only
// well-defined when Accepted() is true.
func (p *Parser[V]) UserData() V {
	return p.stk.Top().Value
}

// Position delegates to the lexer used by the most recent call to Parse.
// Returns 0 if the parser has only ever been driven via raw Step calls.
func (p *Parser[V]) Position() uint64 {
	if p.lex == nil {
		return 0
	}
	return p.lex.Position()
}

// Depth returns the current stack depth, sentinel frame included. Exposed
// mainly for tests asserting invariant 1 ("stack depth ≥ 1 after every
// step").
func (p *Parser[V]) Depth() int {
	return p.stk.Depth()
}

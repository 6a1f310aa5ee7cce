package parser

import (
	"github.com/trumae/lalr"
	"github.com/trumae/lalr/errpolicy"
	"github.com/trumae/lalr/stack"
	"github.com/trumae/lalr/table"
)

// Parse resets the driver, drains lex to completion, and runs the
// shift/reduce loop. lex must already be positioned at its first token
// (i.e. Reset and an initial Advance, or the construction-time equivalent,
// have already happened) — package parser treats the lexer purely as an
// opaque token source (§1 of the design this follows) and never seeds it
// itself.
func (p *Parser[V]) Parse(lex Lexer) {
	p.Reset()
	p.lex = lex
	if binder, ok := lex.(LexerActionBinder); ok {
		for identifier, fn := range p.lexerActions {
			binder.SetLexerActionHandler(identifier, fn)
		}
	}
	for {
		sym := lex.Symbol()
		lexeme := lex.Lexeme()
		if !p.Step(sym, lexeme) {
			break
		}
		lex.Advance()
	}
	p.full = lex.Full()
}

// Step performs a single-lookahead step of the shift/reduce algorithm:
// perform all applicable reductions for the current lookahead, then
// either shift or enter error recovery. Returns false once parsing has
// terminated (accepted or rejected); the caller must not call Step again
// after a false return without an intervening Reset.
func (p *Parser[V]) Step(symbol int, lexeme string) bool {
	if p.accepted || p.rejected {
		return false
	}
	for {
		top := p.stk.Top()
		t, ok := p.sm.State(top.State).Transition(symbol)
		if ok && t.Kind == table.Reduce {
			if p.reduce(t) {
				return false // start symbol reduced: accepted
			}
			continue // re-lookup with the new top state; lookahead unchanged
		}
		if ok && t.Kind == table.Shift {
			p.shift(symbol, lexeme, t)
			p.justRecovered = false
			return true
		}
		// No transition for this lookahead: error recovery.
		if p.recoveryPolicy == PopErrorOnImmediateRefailure && p.justRecovered {
			top := p.stk.Top()
			if p.stk.Depth() > 1 && top.Symbol == p.sm.ErrorSymbol {
				p.stk.Pop()
			}
		}
		p.justRecovered = false
		handled, accepted := p.recover(symbol, lexeme)
		if accepted {
			return false
		}
		if !handled {
			p.rejected = true
			return false
		}
		p.justRecovered = true
		return true
	}
}

// reduce performs §4.5.1: pop the handle, dispatch the bound action,
// push the synthesized frame (or settle acceptance). Returns true iff
// this reduction accepted the start symbol.
func (p *Parser[V]) reduce(t table.Transition) bool {
	if t.ReducedSymbol == p.sm.StartSymbol {
		// Invariant: exactly [sentinel, final_frame] remain.
		final := p.stk.Pop() // final_frame
		p.stk.Pop()          // sentinel
		p.stk.Push(final)    // retained frame holds the accepted user-data
		p.accepted = true
		return true
	}

	span := p.stk.Span(t.ReducedLength)
	if p.debug {
		p.traceReduce(t, span)
	}
	value := p.disp.Invoke(t.ActionIndex, span)
	p.stk.TruncateBy(t.ReducedLength)

	newTop := p.stk.Top().State
	goTo, ok := p.sm.State(newTop).Transition(t.ReducedSymbol)
	if !ok {
		// Guaranteed present by table construction (invariant 3); a
		// missing GOTO means the tables are corrupt.
		p.reportError(errpolicy.ErrorEvent{
			Code:    lalr.ErrUnexpected,
			Message: "missing GOTO transition after reduction",
		})
		p.rejected = true
		return false
	}
	p.stk.Push(stack.Frame[V]{
		State:  goTo.TargetState,
		Symbol: t.ReducedSymbol,
		Lexeme: "",
		Value:  value,
	})
	return false
}

// shift performs §4.5.2: push a frame for the consumed terminal. The
// user-data for shifted terminals is the zero value; only reductions
// synthesize non-trivial values.
func (p *Parser[V]) shift(symbol int, lexeme string, t table.Transition) {
	if p.debug {
		p.traceShift(symbol, lexeme)
	}
	var zero V
	p.stk.Push(stack.Frame[V]{
		State:  t.TargetState,
		Symbol: symbol,
		Lexeme: lexeme,
		Value:  zero,
	})
}

package parser

import (
	"fmt"

	"github.com/trumae/lalr/errpolicy"
	"github.com/trumae/lalr/stack"
	"github.com/trumae/lalr/table"
)

// traceShift emits a SHIFT trace event for a just-pushed terminal frame,
// per §4.7. Routed through the configured policy, or printed to stdout if
// none is configured.
func (p *Parser[V]) traceShift(symbol int, lexeme string) {
	ev := errpolicy.ShiftEvent{
		Symbol: p.sm.Symbol(symbol).Name,
		Lexeme: lexeme,
	}
	p.emitTrace(ev)
}

// traceReduce emits a REDUCE trace event naming the reduced nonterminal and
// the handle it consumed, per §4.7.
func (p *Parser[V]) traceReduce(t table.Transition, span []stack.Frame[V]) {
	handle := make([]errpolicy.HandleFrame, len(span))
	for i, f := range span {
		handle[i] = errpolicy.HandleFrame{
			Symbol: p.sm.Symbol(f.Symbol).Name,
			Lexeme: f.Lexeme,
		}
	}
	ev := errpolicy.ReduceEvent{
		Reduced: p.sm.Symbol(t.ReducedSymbol).Name,
		Handle:  handle,
	}
	p.emitTrace(ev)
}

// emitTrace routes a trace event through the configured policy, or prints
// it to standard output when no policy is configured (§4.7's output
// routing rule).
func (p *Parser[V]) emitTrace(e errpolicy.Event) {
	if p.policy != nil {
		p.policy.OnTrace(e)
		return
	}
	fmt.Println(errpolicy.Format(e))
}

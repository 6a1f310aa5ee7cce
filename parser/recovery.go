package parser

import (
	"fmt"

	"github.com/trumae/lalr"
	"github.com/trumae/lalr/errpolicy"
	"github.com/trumae/lalr/stack"
	"github.com/trumae/lalr/table"
)

// recover implements §4.6: unwind the stack until the error symbol can be
// shifted, reducing along the way, reporting exactly one syntax-error
// notification for this episode regardless of whether recovery ultimately
// succeeds (Testable Scenario S5: "the trace must show exactly one error
// notification" even though recovery does go on to shift an error frame).
//
// Returns (handled, accepted): handled is true once an error frame has
// been shifted (or recovery's own reductions ran to full acceptance);
// accepted is true only in that latter, unusual case.
func (p *Parser[V]) recover(lookahead int, lexeme string) (handled bool, accepted bool) {
	sym := fmt.Sprintf("symbol %d", lookahead)
	if lookahead >= 0 && lookahead < len(p.sm.Symbols) {
		sym = p.sm.Symbol(lookahead).Name
	}
	p.reportError(errpolicy.ErrorEvent{
		Code:    lalr.ErrSyntax,
		Message: fmt.Sprintf("no transition for lookahead %s %q", sym, lexeme),
	})
	errSym := p.sm.ErrorSymbol
	for p.stk.Depth() > 0 {
		top := p.stk.Top()
		t, ok := p.sm.State(top.State).Transition(errSym)
		switch {
		case ok && t.Kind == table.Shift:
			p.stk.Push(stack.Frame[V]{State: t.TargetState, Symbol: errSym})
			return true, false
		case ok && t.Kind == table.Reduce:
			if p.reduce(t) {
				return true, true
			}
			// loop: re-check from the new top state
		case !ok:
			p.stk.Pop()
		default:
			p.reportError(errpolicy.ErrorEvent{
				Code:    lalr.ErrUnexpected,
				Message: "impossible transition kind during error recovery",
			})
			return false, false
		}
	}
	return false, false
}

// reportError forwards e to the configured policy, or drops it if none is
// configured — errors are never returned through Step/Parse except as the
// rejected latch (§7).
func (p *Parser[V]) reportError(e errpolicy.ErrorEvent) {
	if p.policy != nil {
		p.policy.OnError(e)
	}
}

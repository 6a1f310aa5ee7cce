package action

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/trumae/lalr/stack"
	"github.com/trumae/lalr/table"
)

// tracer traces with key 'lalr.action'.
func tracer() tracing.Trace {
	return tracing.Select("lalr.action")
}

// Handler is a semantic action: given a read-only view of the frames being
// reduced (oldest first — the production's RHS, left to right), it returns
// a newly synthesized value for the produced nonterminal. Handlers must not
// mutate the span they're given.
type Handler[V any] func(span []stack.Frame[V]) V

// Dispatcher binds Handlers to productions by identifier and invokes them
// on reduction, falling back to a default handler (or the zero value) when
// a production has no bound callback.
type Dispatcher[V any] struct {
	handlers []Handler[V]   // indexed by action index
	byIdent  map[string]int // production identifier -> action index
	fallback Handler[V]
}

// NewDispatcher builds a Dispatcher over a StateMachine's production list.
// The identifier→index map is built once here, not on every SetHandler
// call.
func NewDispatcher[V any](productions []table.Production) *Dispatcher[V] {
	d := &Dispatcher[V]{
		handlers: make([]Handler[V], len(productions)),
		byIdent:  make(map[string]int, len(productions)),
	}
	for i, p := range productions {
		if _, seen := d.byIdent[p.Identifier]; !seen {
			d.byIdent[p.Identifier] = i
		}
	}
	return d
}

// SetHandler rebinds the callback for the production named identifier.
// An unknown identifier is a silent no-op: the grammar may have evolved
// since the caller last looked at it, and rebinding should never fail.
func (d *Dispatcher[V]) SetHandler(identifier string, fn Handler[V]) {
	idx, ok := d.byIdent[identifier]
	if !ok {
		tracer().Debugf("SetHandler: unknown production identifier %q, ignored", identifier)
		return
	}
	d.handlers[idx] = fn
}

// SetDefaultHandler installs the fallback invoked when a reduction has no
// explicit action index, or its slot has no bound callback.
func (d *Dispatcher[V]) SetDefaultHandler(fn Handler[V]) {
	d.fallback = fn
}

// Invoke dispatches a reduction: actionIndex is table.InvalidIndex for "no
// explicit action", otherwise an index into the production/action list.
func (d *Dispatcher[V]) Invoke(actionIndex int, span []stack.Frame[V]) V {
	if actionIndex != table.InvalidIndex && actionIndex < len(d.handlers) {
		if h := d.handlers[actionIndex]; h != nil {
			return h(span)
		}
	}
	if d.fallback != nil {
		return d.fallback(span)
	}
	var zero V
	return zero
}

package errpolicy

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lalr.errpolicy'.
func tracer() tracing.Trace {
	return tracing.Select("lalr.errpolicy")
}

// Default is a Policy that logs both errors and trace events through
// package tracing, following the tracer()-per-package convention used
// throughout this module.
type Default struct{}

var _ Policy = Default{}

// OnError logs e at error level.
func (Default) OnError(e ErrorEvent) {
	tracer().Errorf("%s: %s", e.Code, e.Message)
}

// OnTrace logs e at debug level, formatted as described in the driver's
// debug-trace contract (SHIFT/REDUCE one-liners).
func (Default) OnTrace(e Event) {
	tracer().Debugf("%s", Format(e))
}

// Format renders e as the one-line SHIFT/REDUCE trace text described by
// the driver's debug-trace contract: "SHIFT: (SYM lexeme)" or
// "REDUCE: REDUCED <- (S1 l1) (S2 l2) ...". Exported so callers with no
// Policy configured (package parser falls back to stdout in that case)
// render events identically to Default and Pretty.
func Format(e Event) string {
	switch ev := e.(type) {
	case ShiftEvent:
		return fmt.Sprintf("SHIFT: (%s %q)", ev.Symbol, ev.Lexeme)
	case ReduceEvent:
		var b strings.Builder
		fmt.Fprintf(&b, "REDUCE: %s <-", ev.Reduced)
		for _, h := range ev.Handle {
			fmt.Fprintf(&b, " (%s %q)", h.Symbol, h.Lexeme)
		}
		return b.String()
	default:
		return fmt.Sprintf("%v", e)
	}
}

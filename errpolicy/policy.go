package errpolicy

// Policy is the sink a Parser reports trace and error notifications
// through. Codes used by the core are lalr.ErrSyntax ("no transition for
// the lookahead, recovery started") and lalr.ErrUnexpected ("corrupt
// tables").
//
// A Policy is called synchronously from whichever goroutine drives the
// parser; if a Policy is shared across parsers running on different
// goroutines, the host is responsible for synchronizing it.
type Policy interface {
	// OnError reports a parser error. Called at most once per syntax
	// error / unexpected-transition occurrence.
	OnError(ErrorEvent)
	// OnTrace reports a SHIFT or REDUCE debug event. Only called while
	// the driving parser has debug tracing enabled.
	OnTrace(Event)
}

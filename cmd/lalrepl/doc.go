/*
Command lalrepl is an interactive calculator REPL built on top of this
module's table-driven LALR(1) runtime: every line typed is parsed and
evaluated by a compiled table.StateMachine for the grammar

	Stmt   ➞ IDENT = Expr  |  Expr
	Expr   ➞ Expr + Term  |  Expr - Term  |  Term
	Term   ➞ Term * Factor  |  Term / Factor  |  Factor
	Factor ➞ NUM  |  IDENT  |  ( Expr )

Variable bindings persist across lines in a calcenv.Env for the lifetime
of the session. Quit with <ctrl>D.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The lalr Authors

*/
package main

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lalr.repl'.
func tracer() tracing.Trace {
	return tracing.Select("lalr.repl")
}

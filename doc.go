/*
Package lalr is a table-driven LALR(1) parser runtime.

Given a precompiled parser state machine (states, transitions, productions,
symbols) and a stream of tokens produced by a companion lexer, package lalr
executes the shift/reduce algorithm, invokes user-supplied semantic action
callbacks on reduction, synthesizes a semantic value for the accepted start
symbol, and performs Yacc-style error recovery using a designated `error`
nonterminal. Package structure is as follows:

■ table: read-only view of a compiled grammar — states, transitions,
symbols, productions/actions. Tables are produced externally (see package
grammar) and loaded here as immutable data.

■ stack: the parser's frame stack.

■ action: binds semantic-action callbacks to productions by identifier.

■ parser: the shift/reduce driver, error recovery, and debug trace.

■ lexfacade: thin adapters around external lexers (text/scanner and
lexmachine), satisfying the façade package parser depends on.

■ errpolicy: the structured error/trace sink parser reports through.

■ grammar: a grammar builder and SLR(1) table generator — the repo's
stand-in for an external table-compiler tool, never imported by package
parser.

■ calcenv: a small runtime environment (scopes and variable bindings) for
the calculator demo's semantic actions.

The base package contains data types used throughout the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The lalr Authors

*/
package lalr

package main

import (
	"fmt"

	"github.com/trumae/lalr/grammar"
	"github.com/trumae/lalr/table"
)

// calcSymbols names every terminal's compiled index, so the lexer façade
// can translate text/scanner tokens into them without re-scanning the
// symbol table on every call.
type calcSymbols struct {
	num, ident               int
	plus, minus, star, slash int
	lparen, rparen, eq       int
}

// buildCalcGrammar compiles the calculator's expression-with-assignment
// grammar and returns the resulting table alongside its terminal indices.
func buildCalcGrammar() (*table.StateMachine, calcSymbols, error) {
	b := grammar.NewBuilder().
		Terminals("NUM", "IDENT", "+", "-", "*", "/", "(", ")", "=").
		Rule("assign", "Stmt", "IDENT", "=", "Expr").
		Rule("stmt_expr", "Stmt", "Expr").
		Rule("add", "Expr", "Expr", "+", "Term").
		Rule("sub", "Expr", "Expr", "-", "Term").
		Rule("expr_term", "Expr", "Term").
		Rule("mul", "Term", "Term", "*", "Factor").
		Rule("div", "Term", "Term", "/", "Factor").
		Rule("term_factor", "Term", "Factor").
		Rule("num", "Factor", "NUM").
		Rule("ident", "Factor", "IDENT").
		Rule("group", "Factor", "(", "Expr", ")").
		Start("Stmt")

	sm, err := grammar.Compile(b.Build())
	if err != nil {
		return nil, calcSymbols{}, fmt.Errorf("compiling calculator grammar: %w", err)
	}

	syms := calcSymbols{
		num:    symbolIndex(sm, "NUM"),
		ident:  symbolIndex(sm, "IDENT"),
		plus:   symbolIndex(sm, "+"),
		minus:  symbolIndex(sm, "-"),
		star:   symbolIndex(sm, "*"),
		slash:  symbolIndex(sm, "/"),
		lparen: symbolIndex(sm, "("),
		rparen: symbolIndex(sm, ")"),
		eq:     symbolIndex(sm, "="),
	}
	return sm, syms, nil
}

// symbolIndex finds name's compiled index. Panics if not found — a
// missing terminal here means buildCalcGrammar's own Terminals call and
// this lookup have drifted apart, a programmer error, not bad input.
func symbolIndex(sm *table.StateMachine, name string) int {
	for i, s := range sm.Symbols {
		if s.Name == name {
			return i
		}
	}
	panic(fmt.Sprintf("lalrepl: grammar has no terminal %q", name))
}

package main

import (
	"strconv"

	"github.com/trumae/lalr/calcenv"
	"github.com/trumae/lalr/parser"
	"github.com/trumae/lalr/stack"
)

// runtimeWarn reports a semantic-evaluation problem (undefined variable,
// division by zero, malformed literal) — distinct from errpolicy.Policy,
// which only ever carries syntax-level parser notifications.
type runtimeWarn func(msg string)

// bindActions wires every calculator production to its semantic action,
// synthesizing a float64 for each reduction. Assignment writes into env;
// every other production is a pure function of its handle's values.
func bindActions(p *parser.Parser[float64], env *calcenv.Env, warn runtimeWarn) {
	p.SetActionHandler("assign", func(span []stack.Frame[float64]) float64 {
		v := span[2].Value
		env.Assign(span[0].Lexeme, v)
		return v
	})
	p.SetActionHandler("stmt_expr", func(span []stack.Frame[float64]) float64 {
		return span[0].Value
	})
	p.SetActionHandler("add", func(span []stack.Frame[float64]) float64 {
		return span[0].Value + span[2].Value
	})
	p.SetActionHandler("sub", func(span []stack.Frame[float64]) float64 {
		return span[0].Value - span[2].Value
	})
	p.SetActionHandler("expr_term", func(span []stack.Frame[float64]) float64 {
		return span[0].Value
	})
	p.SetActionHandler("mul", func(span []stack.Frame[float64]) float64 {
		return span[0].Value * span[2].Value
	})
	p.SetActionHandler("div", func(span []stack.Frame[float64]) float64 {
		if span[2].Value == 0 {
			warn("division by zero")
			return 0
		}
		return span[0].Value / span[2].Value
	})
	p.SetActionHandler("term_factor", func(span []stack.Frame[float64]) float64 {
		return span[0].Value
	})
	p.SetActionHandler("num", func(span []stack.Frame[float64]) float64 {
		v, err := strconv.ParseFloat(span[0].Lexeme, 64)
		if err != nil {
			warn("malformed number " + span[0].Lexeme)
			return 0
		}
		return v
	})
	p.SetActionHandler("ident", func(span []stack.Frame[float64]) float64 {
		b, ok := env.Resolve(span[0].Lexeme)
		if !ok {
			warn("undefined variable " + span[0].Lexeme)
			return 0
		}
		return b.Value
	})
	p.SetActionHandler("group", func(span []stack.Frame[float64]) float64 {
		return span[1].Value
	})
}

package grammar

import "github.com/trumae/lalr/table"

// symbolRef is one interned grammar symbol: its display name and kind.
type symbolRef struct {
	name string
	kind table.SymbolKind
}

// symbolTable interns symbol names to stable indices, in first-seen order
// — the same order the compiled table.StateMachine's Symbols slice ends
// up in.
type symbolTable struct {
	order []symbolRef
	index map[string]int
}

func newSymbolTable() *symbolTable {
	return &symbolTable{index: make(map[string]int)}
}

func (t *symbolTable) intern(name string, kind table.SymbolKind) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	i := len(t.order)
	t.order = append(t.order, symbolRef{name: name, kind: kind})
	t.index[name] = i
	return i
}

// Rule is a single production LHS -> RHS, RHS given as a sequence of
// (already interned) symbol indices. Identifier binds the rule's
// reduction to an action.Handler by name; the empty string means "no
// callback, use the dispatcher's default handler".
type Rule struct {
	LHS        int
	RHS        []int
	Identifier string
}

// Grammar is a finished, buildable rule set: symbols, rules, and the
// distinguished start nonterminal. Grammar is not itself compiled — pass
// it to Compile.
type Grammar struct {
	symbols     *symbolTable
	rules       []Rule
	start       int
	haveStart   bool
	errorSymbol int
	endSymbol   int
}

// Builder assembles a Grammar one rule at a time, Yacc-grammar-file
// style: Terminals pre-declares terminal symbols (anything appearing on
// a RHS that was not pre-declared a terminal is treated as a
// nonterminal), Rule adds one production, Start names the grammar's top
// nonterminal.
type Builder struct {
	g *Grammar
}

// NewBuilder starts a new Grammar. The error marker and end-of-input
// symbols are interned up front, matching table.StateMachine's
// ErrorSymbol/EndSymbol conventions.
func NewBuilder() *Builder {
	g := &Grammar{symbols: newSymbolTable()}
	g.errorSymbol = g.symbols.intern("error", table.ErrorMarker)
	g.endSymbol = g.symbols.intern("$end", table.End)
	return &Builder{g: g}
}

// Terminals pre-declares names as terminal symbols. Call this before any
// Rule call that references them, so Rule doesn't default them to
// nonterminal on first sight.
func (b *Builder) Terminals(names ...string) *Builder {
	for _, n := range names {
		b.g.symbols.intern(n, table.Terminal)
	}
	return b
}

// Rule adds the production identifier: lhs -> rhs.... An empty rhs is an
// epsilon production.
func (b *Builder) Rule(identifier, lhs string, rhs ...string) *Builder {
	lhsIdx := b.g.symbols.intern(lhs, table.Nonterminal)
	rhsIdx := make([]int, len(rhs))
	for i, s := range rhs {
		rhsIdx[i] = b.g.symbols.intern(s, table.Nonterminal)
	}
	b.g.rules = append(b.g.rules, Rule{LHS: lhsIdx, RHS: rhsIdx, Identifier: identifier})
	return b
}

// Start names the grammar's top nonterminal — the symbol Compile
// augments with a synthetic Start -> top production.
func (b *Builder) Start(name string) *Builder {
	b.g.start = b.g.symbols.intern(name, table.Nonterminal)
	b.g.haveStart = true
	return b
}

// Build finishes the grammar. Panics if Start was never called or no
// rules were added — both are programmer errors in the caller, not
// malformed input to recover from.
func (b *Builder) Build() *Grammar {
	if !b.g.haveStart {
		panic("grammar: Builder.Start was never called")
	}
	if len(b.g.rules) == 0 {
		panic("grammar: Builder has no rules")
	}
	return b.g
}

package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/trumae/lalr/table"
)

// analysis holds the static FIRST/FOLLOW/nullable sets computed for a
// Grammar, grounded on the fixed-point algorithms of "Crafting a
// Compiler" §4.4 — the same source lr/tables.go's closure/goto-set
// construction follows for the next stage.
type analysis struct {
	g        *Grammar
	first    map[int]*treeset.Set // symbol index -> FIRST set (terminal indices)
	follow   map[int]*treeset.Set // nonterminal index -> FOLLOW set (terminal + end indices)
	nullable map[int]bool
}

func newTerminalSet() *treeset.Set { return treeset.NewWith(utils.IntComparator) }

func analyze(g *Grammar) *analysis {
	a := &analysis{
		g:        g,
		first:    make(map[int]*treeset.Set),
		follow:   make(map[int]*treeset.Set),
		nullable: make(map[int]bool),
	}
	a.computeNullableAndFirst()
	a.computeFollow()
	return a
}

func (a *analysis) kindOf(sym int) table.SymbolKind { return a.g.symbols.order[sym].kind }

func (a *analysis) firstOf(sym int) *treeset.Set {
	if s, ok := a.first[sym]; ok {
		return s
	}
	s := newTerminalSet()
	if a.kindOf(sym) == table.Terminal || a.kindOf(sym) == table.End {
		s.Add(sym)
	}
	a.first[sym] = s
	return s
}

// firstOfSequence computes FIRST of a symbol sequence (e.g. a production
// suffix), returning the set and whether the whole sequence is nullable.
func (a *analysis) firstOfSequence(seq []int) (*treeset.Set, bool) {
	out := newTerminalSet()
	for _, sym := range seq {
		out.Add(a.firstOf(sym).Values()...)
		if a.kindOf(sym) == table.Terminal || !a.nullable[sym] {
			return out, false
		}
	}
	return out, true
}

func (a *analysis) computeNullableAndFirst() {
	for changed := true; changed; {
		changed = false
		for _, r := range a.g.rules {
			if len(r.RHS) == 0 {
				if !a.nullable[r.LHS] {
					a.nullable[r.LHS] = true
					changed = true
				}
				continue
			}
			allNullable := true
			lhsFirst := a.firstOf(r.LHS)
			for _, sym := range r.RHS {
				before := lhsFirst.Size()
				lhsFirst.Add(a.firstOf(sym).Values()...)
				if lhsFirst.Size() != before {
					changed = true
				}
				if !a.nullable[sym] {
					allNullable = false
					break
				}
			}
			if allNullable && !a.nullable[r.LHS] {
				a.nullable[r.LHS] = true
				changed = true
			}
		}
	}
}

func (a *analysis) computeFollow() {
	a.follow[a.g.start] = newTerminalSet()
	a.follow[a.g.start].Add(a.g.endSymbol)
	for changed := true; changed; {
		changed = false
		for _, r := range a.g.rules {
			for i, B := range r.RHS {
				if a.kindOf(B) == table.Terminal {
					continue
				}
				followB := a.followOf(B)
				before := followB.Size()

				beta := r.RHS[i+1:]
				betaFirst, betaNullable := a.firstOfSequence(beta)
				followB.Add(betaFirst.Values()...)
				if betaNullable {
					followB.Add(a.followOf(r.LHS).Values()...)
				}
				if followB.Size() != before {
					changed = true
				}
			}
		}
	}
}

func (a *analysis) followOf(nonterminal int) *treeset.Set {
	if s, ok := a.follow[nonterminal]; ok {
		return s
	}
	s := newTerminalSet()
	a.follow[nonterminal] = s
	return s
}

package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing"
	"github.com/trumae/lalr/table"
)

// tracer traces with key 'lalr.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("lalr.grammar")
}

// cfsmState is one state of the characteristic finite state machine: a
// closed LR(0) item set plus the serial ID it was assigned.
type cfsmState struct {
	id    int
	items *treeset.Set
}

type cfsmEdge struct {
	from, to int
	symbol   int
}

// ConflictError describes an unresolved shift/reduce or reduce/reduce
// conflict found while building the ACTION table — Compile refuses to
// silently pick a winner (Non-goal: a conflict-resolving LALR(1)
// compiler; see package doc).
type ConflictError struct {
	State  int
	Symbol string
	Detail string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("grammar: conflict in state %d on %q: %s", e.State, e.Symbol, e.Detail)
}

// Compile runs closure/goto-set construction over g, augmenting a fresh
// Start symbol internally (Start -> g's declared start symbol), and
// emits a table.StateMachine. Returns a *ConflictError if the grammar is
// not SLR(1).
func Compile(g *Grammar) (*table.StateMachine, error) {
	a := analyze(g)

	augStart := g.symbols.intern("\x00Start", table.Nonterminal)
	augRule := len(g.rules)
	rules := append(append([]Rule{}, g.rules...), Rule{LHS: augStart, RHS: []int{g.start}})

	startKernel := newItemSet()
	startKernel.Add(itemKey(augRule, 0))
	startClosure := closure(rules, startKernel)

	states := []*cfsmState{{id: 0, items: startClosure}}
	edges := arraylist.New()
	worklist := []int{0}

	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]
		s := states[id]

		for _, A := range symbolsAfterDotIn(rules, s.items) {
			kernel := gotoSet(rules, s.items, A)
			if kernel.Size() == 0 {
				continue
			}
			target := closure(rules, kernel)

			targetID := -1
			for _, cand := range states {
				if sameItems(cand.items, target) {
					targetID = cand.id
					break
				}
			}
			if targetID < 0 {
				targetID = len(states)
				states = append(states, &cfsmState{id: targetID, items: target})
				worklist = append(worklist, targetID)
			}
			edges.Add(cfsmEdge{from: id, to: targetID, symbol: A})
		}
	}
	tracer().Debugf("built CFSM with %d states, %d edges", len(states), edges.Size())

	return emitTables(g, rules, augRule, augStart, states, edges, a)
}

// symbolsAfterDotIn collects, without duplicates, every symbol appearing
// immediately after a dot across a state's items — the set of symbols
// goto must be tried for.
func symbolsAfterDotIn(rules []Rule, items *treeset.Set) []int {
	seen := map[int]bool{}
	var out []int
	for _, v := range items.Values() {
		key := v.(int)
		A := symbolAfterDot(rules, key)
		if A >= 0 && !seen[A] {
			seen[A] = true
			out = append(out, A)
		}
	}
	return out
}

func emitTables(
	g *Grammar,
	rules []Rule,
	augRule, augStart int,
	states []*cfsmState,
	edges *arraylist.List,
	a *analysis,
) (*table.StateMachine, error) {
	tableStates := make([]table.State, len(states))

	// Shift transitions and GOTOs: one edge per (state, symbol).
	it := edges.Iterator()
	for it.Next() {
		e := it.Value().(cfsmEdge)
		tableStates[e.from].Transitions = append(tableStates[e.from].Transitions, table.Transition{
			InputSymbol: e.symbol,
			Kind:        table.Shift,
			TargetState: e.to,
		})
	}

	// Reduce transitions, one per completed item per symbol in FOLLOW(LHS)
	// (or {EndSymbol} for the augmenting rule, which only ever completes
	// looking at end-of-input).
	for _, s := range states {
		for _, v := range s.items.Values() {
			key := v.(int)
			rule, _ := decodeItem(key)
			if symbolAfterDot(rules, key) != -1 {
				continue // not a completed item
			}
			r := rules[rule]

			var lookaheads []int
			actionIdx := table.InvalidIndex
			if rule == augRule {
				lookaheads = []int{g.endSymbol}
			} else {
				lookaheads = intValues(a.followOf(r.LHS))
				actionIdx = rule
			}
			for _, la := range lookaheads {
				if err := addReduce(&tableStates[s.id], la, r.LHS, len(r.RHS), actionIdx, g, s.id); err != nil {
					return nil, err
				}
			}
		}
	}

	symbols := make([]table.Symbol, len(g.symbols.order))
	for i, ref := range g.symbols.order {
		symbols[i] = table.Symbol{Name: ref.name, Kind: ref.kind}
	}

	productions := make([]table.Production, len(g.rules))
	for i, r := range g.rules {
		productions[i] = table.Production{Identifier: r.Identifier}
	}

	return &table.StateMachine{
		States:      tableStates,
		Symbols:     symbols,
		Productions: productions,
		StartState:  0,
		StartSymbol: augStart,
		EndSymbol:   g.endSymbol,
		ErrorSymbol: g.errorSymbol,
	}, nil
}

// addReduce inserts a reduce transition into state, reporting a conflict
// if a transition for the same input symbol already exists (whether
// shift or an earlier reduce).
func addReduce(state *table.State, symbol, reducedSymbol, length, actionIdx int, g *Grammar, stateID int) error {
	for _, t := range state.Transitions {
		if t.InputSymbol == symbol {
			detail := "reduce/reduce"
			if t.Kind == table.Shift {
				detail = "shift/reduce"
			}
			return &ConflictError{State: stateID, Symbol: g.symbols.order[symbol].name, Detail: detail}
		}
	}
	state.Transitions = append(state.Transitions, table.Transition{
		InputSymbol:   symbol,
		Kind:          table.Reduce,
		ReducedSymbol: reducedSymbol,
		ReducedLength: length,
		ActionIndex:   actionIdx,
	})
	return nil
}

func intValues(s *treeset.Set) []int {
	vals := s.Values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.(int)
	}
	return out
}

package table

import "github.com/cnf/structhash"

// Production is a reduction slot: an identifier used to bind a user
// callback by name at parser-construction time (package action).
type Production struct {
	Identifier string
}

// StateMachine is the compiled grammar a Parser runs over: states,
// transitions, symbols and productions, plus the handles of the four
// distinguished symbols/states the driver and recovery algorithm need.
//
// StateMachine is assumed immutable for the lifetime of any parser
// constructed over it and is never mutated by this module.
type StateMachine struct {
	States      []State
	Symbols     []Symbol
	Productions []Production

	// StartState is the sentinel frame's state.
	StartState int
	// StartSymbol is the augmenting nonterminal (conventionally named
	// Start, or S', in grammar theory), never the grammar's "real" top
	// nonterminal. It must be produced by exactly one reduction, in
	// exactly one state, on exactly one lookahead (EndSymbol) — package
	// parser's acceptance check trusts this and does not re-verify it,
	// just as it trusts every other table invariant package grammar is
	// responsible for establishing.
	StartSymbol int
	EndSymbol   int
	ErrorSymbol int
}

// State returns the state at index i.
func (m *StateMachine) State(i int) *State { return &m.States[i] }

// Symbol returns the symbol at index i.
func (m *StateMachine) Symbol(i int) Symbol { return m.Symbols[i] }

// Production returns the production/action descriptor at index i.
func (m *StateMachine) Production(i int) Production { return m.Productions[i] }

// Fingerprint returns a stable hash of the compiled tables, suitable for
// cheaply checking whether two StateMachine values describe the same
// grammar (used by cmd/lalrepl's grammar cache).
func (m *StateMachine) Fingerprint() (string, error) {
	return structhash.Hash(m, 1)
}

package calcenv

import "fmt"

// Binding is a single named value held in a Scope's symbol table.
type Binding struct {
	name  string
	Value float64
}

// Name returns the binding's variable name.
func (b *Binding) Name() string { return b.name }

func (b *Binding) String() string {
	return fmt.Sprintf("<%s = %g>", b.name, b.Value)
}

// symbolTable maps variable names to their current Binding within one
// Scope.
type symbolTable struct {
	table map[string]*Binding
}

func newSymbolTable() *symbolTable {
	return &symbolTable{table: make(map[string]*Binding)}
}

func (t *symbolTable) resolve(name string) *Binding {
	return t.table[name]
}

// assign creates or overwrites the binding for name, returning the new
// binding and whatever was previously stored under that name (nil on
// first definition).
func (t *symbolTable) assign(name string, value float64) (*Binding, *Binding) {
	old := t.table[name]
	b := &Binding{name: name, Value: value}
	t.table[name] = b
	return b, old
}

// Scope is one lexical level of variable bindings, linked to its
// enclosing Scope. The REPL's top-level input runs in the global scope;
// nothing in the calculator grammar currently opens nested scopes, but
// the tree shape is kept so a future `let`-style block extension has
// somewhere to hook in.
type Scope struct {
	Name   string
	Parent *Scope
	vars   *symbolTable
}

func newScope(name string, parent *Scope) *Scope {
	return &Scope{Name: name, Parent: parent, vars: newSymbolTable()}
}

func (s *Scope) String() string { return fmt.Sprintf("<scope %s>", s.Name) }

// Assign defines or overwrites name in this scope, never in an ancestor —
// matching ordinary assignment semantics (`x = 3` always writes the
// innermost binding, shadowing an outer `x` rather than mutating it).
func (s *Scope) Assign(name string, value float64) *Binding {
	b, _ := s.vars.assign(name, value)
	return b
}

// Resolve looks up name in this scope, then its ancestors, returning the
// binding and the scope it was found in, or (nil, nil) if undefined
// anywhere on the path to the root.
func (s *Scope) Resolve(name string) (*Binding, *Scope) {
	for cur := s; cur != nil; cur = cur.Parent {
		if b := cur.vars.resolve(name); b != nil {
			return b, cur
		}
	}
	return nil, nil
}

// Env is a stack of Scopes, rooted at a single global scope created by
// New. Semantic actions hold one Env for the lifetime of a REPL session
// (or a single Parse call, for one-shot evaluation).
type Env struct {
	global *Scope
	top    *Scope
}

// New creates an Env with just the global scope active.
func New() *Env {
	g := newScope("global", nil)
	return &Env{global: g, top: g}
}

// Current returns the innermost active scope.
func (e *Env) Current() *Scope { return e.top }

// Global returns the outermost scope, holding bindings made outside of
// any nested block.
func (e *Env) Global() *Scope { return e.global }

// PushScope opens a new nested scope under the current one.
func (e *Env) PushScope(name string) *Scope {
	e.top = newScope(name, e.top)
	return e.top
}

// PopScope closes the innermost scope, returning to its parent. Panics if
// called when only the global scope remains — every push this session
// made must be balanced by a pop.
func (e *Env) PopScope() *Scope {
	if e.top.Parent == nil {
		panic("calcenv: attempt to pop the global scope")
	}
	closed := e.top
	e.top = e.top.Parent
	return closed
}

// Assign defines name in the current scope.
func (e *Env) Assign(name string, value float64) *Binding {
	return e.top.Assign(name, value)
}

// Resolve looks up name starting at the current scope and walking out to
// the global scope.
func (e *Env) Resolve(name string) (*Binding, bool) {
	b, _ := e.top.Resolve(name)
	return b, b != nil
}

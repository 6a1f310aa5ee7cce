package grammar

import (
	"io"
	"strconv"
	"testing"

	"github.com/trumae/lalr/parser"
	"github.com/trumae/lalr/stack"
	"github.com/trumae/lalr/table"
)

// token is one lexeme/symbol pair fed to the parser by a fixed-slice
// lexer, mirroring package parser's own test fixtures.
type token struct {
	symbol int
	lexeme string
}

type sliceLexer struct {
	toks []token
	pos  int
	end  int
}

func newSliceLexer(end int, toks ...token) *sliceLexer { return &sliceLexer{toks: toks, end: end} }

func (l *sliceLexer) Reset(io.Reader, string) { l.pos = 0 }
func (l *sliceLexer) Advance() {
	if l.pos < len(l.toks) {
		l.pos++
	}
}
func (l *sliceLexer) Symbol() int {
	if l.pos >= len(l.toks) {
		return l.end
	}
	return l.toks[l.pos].symbol
}
func (l *sliceLexer) Lexeme() string {
	if l.pos >= len(l.toks) {
		return ""
	}
	return l.toks[l.pos].lexeme
}
func (l *sliceLexer) Position() uint64 { return uint64(l.pos) }
func (l *sliceLexer) Full() bool       { return l.pos >= len(l.toks) }

// sumGrammar builds the classic left-recursive, conflict-free
// E -> E + T | T, T -> NUM grammar (Crafting a Compiler §4.4's running
// example), interning NUM and + as terminals before any Rule call.
func sumGrammar() *Grammar {
	return NewBuilder().
		Terminals("NUM", "+").
		Rule("sum", "E", "E", "+", "T").
		Rule("id", "E", "T").
		Rule("num", "T", "NUM").
		Start("E").
		Build()
}

func TestCompileSumGrammarNoConflicts(t *testing.T) {
	if _, err := Compile(sumGrammar()); err != nil {
		t.Fatalf("unexpected conflict: %v", err)
	}
}

func indexOf(sm *table.StateMachine, name string) int {
	for i, s := range sm.Symbols {
		if s.Name == name {
			return i
		}
	}
	return -1
}

func TestCompiledStartSymbolIsAugmented(t *testing.T) {
	sm, err := Compile(sumGrammar())
	if err != nil {
		t.Fatalf("unexpected conflict: %v", err)
	}
	eIdx := indexOf(sm, "E")
	if sm.StartSymbol == eIdx {
		t.Fatalf("StartSymbol must be a synthetic augmenting symbol, not E itself")
	}
	if sm.Symbol(sm.StartSymbol).Kind != table.Nonterminal {
		t.Fatalf("augmenting symbol should be a nonterminal")
	}
}

func TestCompiledGrammarParsesChainedSums(t *testing.T) {
	sm, err := Compile(sumGrammar())
	if err != nil {
		t.Fatalf("unexpected conflict: %v", err)
	}
	numSym := indexOf(sm, "NUM")
	plusSym := indexOf(sm, "+")

	p := parser.New[int](sm, nil)
	p.SetActionHandler("num", func(span []stack.Frame[int]) int {
		n, _ := strconv.Atoi(span[0].Lexeme)
		return n
	})
	p.SetActionHandler("sum", func(span []stack.Frame[int]) int {
		return span[0].Value + span[2].Value
	})
	p.SetActionHandler("id", func(span []stack.Frame[int]) int {
		return span[0].Value
	})

	lex := newSliceLexer(sm.EndSymbol,
		token{numSym, "1"}, token{plusSym, "+"}, token{numSym, "2"}, token{plusSym, "+"}, token{numSym, "3"})
	p.Parse(lex)

	if !p.Accepted() {
		t.Fatalf("expected acceptance")
	}
	if got := p.UserData(); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}

func TestCompileReportsShiftReduceConflict(t *testing.T) {
	g := NewBuilder().
		Terminals("NUM", "+").
		Rule("plus", "E", "E", "+", "E").
		Rule("num", "E", "NUM").
		Start("E").
		Build()

	_, err := Compile(g)
	if err == nil {
		t.Fatalf("expected a conflict error for the ambiguous expression grammar")
	}
	if _, ok := err.(*ConflictError); !ok {
		t.Fatalf("expected *ConflictError, got %T", err)
	}
}

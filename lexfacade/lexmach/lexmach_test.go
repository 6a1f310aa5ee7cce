package lexmach

import (
	"testing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Grammar-symbol indices mirror cmd/lalrepl's calcSymbols shape: a couple
// of terminals plus an end-of-input symbol package parser expects once the
// lexer is exhausted.
const (
	symNum = iota + 1
	symIdent
	symPlus
	symEnd
)

var tokenIds = map[string]int{
	"NUM":   0,
	"ID":    1,
	"+":     2,
	"SPACE": 3,
}

func idToSymbol(id int) int {
	switch id {
	case tokenIds["NUM"]:
		return symNum
	case tokenIds["ID"]:
		return symIdent
	case tokenIds["+"]:
		return symPlus
	default:
		return -2
	}
}

func newCalcAdapter(t *testing.T) *Adapter {
	t.Helper()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[0-9]+`), makeToken(tokenIds["NUM"]))
		lexer.Add([]byte(`[a-zA-Z][a-zA-Z0-9]*`), makeToken(tokenIds["ID"]))
		lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	}
	a, err := NewAdapter(init, []string{"+"}, nil, tokenIds, idToSymbol, symEnd)
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}
	return a
}

// Skip mirrors the teacher's lexmachine Skip action: discard the match and
// keep scanning.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

var lexmachInputs = []string{
	"1",
	"1+12",
	"x + 1",
}

var lexmachTokenCounts = []int{1, 3, 3}

func TestScannerTokenCounts(t *testing.T) {
	a := newCalcAdapter(t)
	for i, input := range lexmachInputs {
		sc, err := a.Scanner(input)
		if err != nil {
			t.Fatalf("input #%d: Scanner: %v", i, err)
		}
		sc.Advance()
		count := 0
		for sc.Symbol() != symEnd {
			count++
			sc.Advance()
		}
		if count != lexmachTokenCounts[i] {
			t.Errorf("input #%d (%q): expected %d tokens, got %d", i, input, lexmachTokenCounts[i], count)
		}
	}
}

func TestScannerSymbolMapperTranslation(t *testing.T) {
	a := newCalcAdapter(t)
	sc, err := a.Scanner("x+1")
	if err != nil {
		t.Fatalf("Scanner: %v", err)
	}
	sc.Advance()
	if got := sc.Symbol(); got != symIdent {
		t.Fatalf("expected ident symbol %d, got %d", symIdent, got)
	}
	if got := sc.Lexeme(); got != "x" {
		t.Fatalf("expected lexeme %q, got %q", "x", got)
	}
	sc.Advance()
	if got := sc.Symbol(); got != symPlus {
		t.Fatalf("expected plus symbol %d, got %d", symPlus, got)
	}
	sc.Advance()
	if got := sc.Symbol(); got != symNum {
		t.Fatalf("expected num symbol %d, got %d", symNum, got)
	}
}

func TestScannerReportsEndSymbolAndFullAtEndOfInput(t *testing.T) {
	a := newCalcAdapter(t)
	sc, err := a.Scanner("1")
	if err != nil {
		t.Fatalf("Scanner: %v", err)
	}
	sc.Advance()
	if sc.Full() {
		t.Fatalf("expected Full() to be false before input is exhausted")
	}
	sc.Advance()
	if !sc.Full() {
		t.Fatalf("expected Full() once lexmachine reports end-of-input")
	}
	if got := sc.Symbol(); got != symEnd {
		t.Fatalf("expected end symbol %d once Full(), got %d", symEnd, got)
	}
}

// TestScannerUnconsumedInputResyncs exercises the *machines.UnconsumedInput
// retry loop in Advance: a byte no pattern matches (here, '#', which is
// registered as neither a literal, a keyword, nor matched by NUM/ID/space)
// must be reported through the error handler and then skipped, rather than
// wedging the scanner or panicking.
func TestScannerUnconsumedInputResyncs(t *testing.T) {
	a := newCalcAdapter(t)
	sc, err := a.Scanner("1#2")
	if err != nil {
		t.Fatalf("Scanner: %v", err)
	}
	var reported []error
	sc.SetErrorHandler(func(err error) { reported = append(reported, err) })

	sc.Advance() // "1"
	if got := sc.Symbol(); got != symNum {
		t.Fatalf("expected first token to be NUM, got symbol %d", got)
	}
	sc.Advance() // resyncs past '#', lands on "2"
	if got := sc.Symbol(); got != symNum {
		t.Fatalf("expected scanner to resync onto the second NUM token, got symbol %d", got)
	}
	if got := sc.Lexeme(); got != "2" {
		t.Fatalf("expected lexeme %q after resync, got %q", "2", got)
	}
	if len(reported) == 0 {
		t.Fatalf("expected the unconsumed '#' to be reported via the error handler")
	}
	sc.Advance()
	if !sc.Full() {
		t.Fatalf("expected the scanner to reach end-of-input after the second NUM token")
	}
}

func TestScannerLexerActionHandlerFiresOnNamedToken(t *testing.T) {
	a := newCalcAdapter(t)
	sc, err := a.Scanner("1+2")
	if err != nil {
		t.Fatalf("Scanner: %v", err)
	}
	var seen []string
	sc.SetLexerActionHandler("NUM", func(lexeme string) {
		seen = append(seen, lexeme)
	})
	for sc.Advance(); sc.Symbol() != symEnd; sc.Advance() {
	}
	if len(seen) != 2 || seen[0] != "1" || seen[1] != "2" {
		t.Fatalf("expected the NUM hook to fire for %q then %q, got %v", "1", "2", seen)
	}
}

func TestScannerLexerActionHandlerUnknownIdentifierIsNoop(t *testing.T) {
	a := newCalcAdapter(t)
	sc, err := a.Scanner("1")
	if err != nil {
		t.Fatalf("Scanner: %v", err)
	}
	sc.SetLexerActionHandler("NOT_A_REAL_TOKEN", func(string) {
		t.Fatalf("hook for an unregistered identifier must never fire")
	})
	sc.Advance()
	sc.Advance()
}

/*
Package lexmach adapts github.com/timtadh/lexmachine to the Lexer contract
package parser depends on, grounded on lr/scanner/lexmach/lexmachine.go.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 The lalr Authors

*/
package lexmach

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'lalr.lexfacade'.
func tracer() tracing.Trace {
	return tracing.Select("lalr.lexfacade")
}

// Adapter builds lexmachine-backed lexers for a fixed set of literals and
// keywords, translating lexmachine token IDs into grammar-symbol indices
// via idToSymbol.
type Adapter struct {
	lexer      *lexmachine.Lexer
	idToSymbol func(tokenID int) int
	endSymbol  int
	names      map[int]string
}

// NewAdapter compiles a lexmachine DFA over literals and keywords. init may
// add further patterns before compilation (e.g. numbers, identifiers).
// tokenIds maps literal/keyword text to the lexmachine token ID idToSymbol
// later translates into a grammar-symbol index.
func NewAdapter(init func(*lexmachine.Lexer), literals, keywords []string, tokenIds map[string]int, idToSymbol func(int) int, endSymbol int) (*Adapter, error) {
	lexer := lexmachine.NewLexer()
	init(lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		lexer.Add([]byte(r), makeToken(tokenIds[lit]))
	}
	for _, kw := range keywords {
		lexer.Add([]byte(strings.ToLower(kw)), makeToken(tokenIds[kw]))
	}
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling lexmachine DFA: %v", err)
		return nil, err
	}
	names := make(map[int]string, len(tokenIds))
	for name, id := range tokenIds {
		names[id] = name
	}
	return &Adapter{lexer: lexer, idToSymbol: idToSymbol, endSymbol: endSymbol, names: names}, nil
}

// Scanner creates a façade over input, satisfying the Lexer contract.
func (a *Adapter) Scanner(input string) (*Scanner, error) {
	s, err := a.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, idToSymbol: a.idToSymbol, endSymbol: a.endSymbol, names: a.names}, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// Scanner is a Lexer façade over a single lexmachine scan.
type Scanner struct {
	scanner    *lexmachine.Scanner
	idToSymbol func(int) int
	endSymbol  int
	names      map[int]string

	lexeme      string
	position    uint64
	full        bool
	lastTokenID int
	onLexErr    func(error)
	hooks       map[string]func(string)
}

// SetErrorHandler installs a handler lexer errors are forwarded to.
func (s *Scanner) SetErrorHandler(h func(error)) {
	s.onLexErr = h
}

// SetLexerActionHandler binds fn to fire whenever a token registered under
// identifier (the name passed to NewAdapter's tokenIds map) is recognized.
// Satisfies parser.LexerActionBinder. Unknown identifiers are a silent
// no-op, matching parser.Parser.SetActionHandler's convention.
func (s *Scanner) SetLexerActionHandler(identifier string, fn func(lexeme string)) {
	if s.hooks == nil {
		s.hooks = make(map[string]func(string))
	}
	s.hooks[identifier] = fn
}

// Reset is a no-op: lexmachine scanners are created fresh per input by
// Adapter.Scanner, so there is no in-place range to rebind. Present only
// to satisfy the Lexer contract package parser depends on.
func (s *Scanner) Reset(_ io.Reader, _ string) {}

// Advance moves to the next token, skipping unconsumed-input errors the
// way lr/scanner/lexmach/lexmachine.go does: report them and resynchronize
// at the failing position.
func (s *Scanner) Advance() {
	if s.full {
		return
	}
	tok, err, eof := s.scanner.Next()
	for err != nil {
		if s.onLexErr != nil {
			s.onLexErr(err)
		} else {
			tracer().Errorf("lexer error: %v", err)
		}
		if ui, is := err.(*machines.UnconsumedInput); is {
			s.scanner.TC = ui.FailTC
		}
		tok, err, eof = s.scanner.Next()
	}
	if eof {
		s.full = true
		s.lexeme = ""
		return
	}
	t := tok.(*lexmachine.Token)
	s.lexeme = string(t.Lexeme)
	s.position = uint64(t.TC)
	s.lastTokenID = t.Type
	if fn, ok := s.hooks[s.names[s.lastTokenID]]; ok {
		fn(s.lexeme)
	}
}

// Symbol returns the current token's grammar-symbol index.
func (s *Scanner) Symbol() int {
	if s.full {
		return s.endSymbol
	}
	return s.idToSymbol(s.lastTokenID)
}

// Lexeme returns the current token's text.
func (s *Scanner) Lexeme() string { return s.lexeme }

// Position returns the current input offset.
func (s *Scanner) Position() uint64 { return s.position }

// Full reports whether all input has been consumed.
func (s *Scanner) Full() bool { return s.full }

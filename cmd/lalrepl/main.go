package main

import (
	"flag"
	"os"
	"strings"
	tscan "text/scanner"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/trumae/lalr/calcenv"
	"github.com/trumae/lalr/errpolicy"
	"github.com/trumae/lalr/lexfacade"
	"github.com/trumae/lalr/parser"
	"github.com/trumae/lalr/table"
)

// main starts an interactive CLI, reading one calculator statement per
// line, evaluating it over the compiled grammar, and printing the
// result. Assignments (`x = expr`) persist in a calcenv.Env for the rest
// of the session.
func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	debug := flag.Bool("debug", false, "Print SHIFT/REDUCE trace for every line")
	grammarCache := flag.String("grammar", "", "Path to a cached grammar fingerprint; warns if the compiled grammar has drifted since it was written")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))

	pterm.Info.Println("Welcome to lalrepl")
	tracer().Infof("trace level is %s", *tlevel)

	sm, syms, err := buildCalcGrammar()
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(2)
	}
	if *grammarCache != "" {
		checkGrammarCache(sm, *grammarCache)
	}

	policy := errpolicy.NewPretty()
	env := calcenv.New()
	p := parser.New[float64](sm, policy)
	p.SetDebugEnabled(*debug)
	bindActions(p, env, func(msg string) {
		pterm.Warning.Println(msg)
	})

	lex := lexfacade.NewGoScanner(symbolMapper(syms), sm.EndSymbol)
	lex.SetErrorHandler(func(err error) {
		pterm.Error.Printf("lex error: %v\n", err)
	})

	repl, err := readline.New("lalrepl> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()

	tracer().Infof("quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF on <ctrl>D, readline.ErrInterrupt on <ctrl>C
			break
		}
		if line == "" {
			continue
		}
		evalLine(p, lex, line)
	}
}

// evalLine resets the lexer and parser over one line of input, and
// prints either the synthesized result or a rejection notice.
func evalLine(p *parser.Parser[float64], lex *lexfacade.GoScanner, line string) {
	lex.Reset(strings.NewReader(line), "<repl>")
	lex.Advance()
	p.Parse(lex)
	if !p.Accepted() {
		pterm.Error.Println("rejected")
		return
	}
	pterm.Success.Printf("%g\n", p.UserData())
}

// symbolMapper translates text/scanner tokens into this grammar's
// terminal indices; anything else (stray punctuation, unterminated
// strings) maps to an index no state has a transition for, which the
// driver reports through ordinary error recovery.
func symbolMapper(syms calcSymbols) lexfacade.SymbolMapper {
	const unknown = -2
	return func(tok rune) int {
		switch tok {
		case tscan.Int, tscan.Float:
			return syms.num
		case tscan.Ident:
			return syms.ident
		case '+':
			return syms.plus
		case '-':
			return syms.minus
		case '*':
			return syms.star
		case '/':
			return syms.slash
		case '(':
			return syms.lparen
		case ')':
			return syms.rparen
		case '=':
			return syms.eq
		default:
			return unknown
		}
	}
}

// checkGrammarCache compares sm's Fingerprint against whatever was last
// written to path, warns on a mismatch (the compiled grammar changed
// since the cache was written), and then rewrites path with the current
// fingerprint. A missing or unreadable cache file is treated as "no
// prior fingerprint" rather than an error.
func checkGrammarCache(sm *table.StateMachine, path string) {
	fp, err := sm.Fingerprint()
	if err != nil {
		tracer().Errorf("fingerprinting grammar: %v", err)
		return
	}
	if prev, err := os.ReadFile(path); err == nil && string(prev) != fp {
		pterm.Warning.Println("compiled grammar differs from the cached fingerprint; stale bindings may be in play")
	}
	if err := os.WriteFile(path, []byte(fp), 0o644); err != nil {
		tracer().Errorf("writing grammar cache: %v", err)
	}
}

func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  warn",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

func traceLevel(s string) tracing.TraceLevel {
	switch s {
	case "Debug":
		return tracing.LevelDebug
	case "Error":
		return tracing.LevelError
	default:
		return tracing.LevelInfo
	}
}

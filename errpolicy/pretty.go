package errpolicy

import (
	"github.com/pterm/pterm"
)

// Pretty is a Policy for interactive use (see cmd/lalrepl): errors are
// printed through pterm's Error style, trace events through pterm's Debug
// style, in addition to being logged through package tracing.
type Pretty struct {
	Default
}

var _ Policy = Pretty{}

// NewPretty configures pterm's prefixes the way trepl/repl.go's
// initDisplay did, and returns a ready-to-use Pretty policy.
func NewPretty() Pretty {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Debug.Prefix = pterm.Prefix{
		Text:  "  trace",
		Style: pterm.NewStyle(pterm.BgGray, pterm.FgBlack),
	}
	return Pretty{}
}

// OnError prints e via pterm, then logs it as Default does.
func (p Pretty) OnError(e ErrorEvent) {
	pterm.Error.Printf("%s: %s\n", e.Code, e.Message)
	p.Default.OnError(e)
}

// OnTrace prints e via pterm, then logs it as Default does.
func (p Pretty) OnTrace(e Event) {
	pterm.Debug.Println(Format(e))
	p.Default.OnTrace(e)
}

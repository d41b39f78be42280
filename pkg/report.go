package lume

import (
	"fmt"

	"github.com/tliron/commonlog"
)

// Reporter is the diagnostics sink the parser reports syntax errors to. Each
// structural error is reported exactly once, at the point it is raised. A
// Reporter shared across concurrent parses must be safe for concurrent use;
// the implementations below are call-local.
type Reporter interface {
	Report(tok Token, message string)
}

// Diagnostic is one reported syntax error with its source location.
type Diagnostic struct {
	Token   Token
	Message string
}

func (d Diagnostic) String() string {
	if d.Token.Typ == TokenEOF {
		return fmt.Sprintf("[line %d] error at end: %s", d.Token.Line, d.Message)
	}

	return fmt.Sprintf("[line %d] error at '%s': %s", d.Token.Line, d.Token.Lexeme, d.Message)
}

// CollectReporter accumulates diagnostics in the order they were reported.
type CollectReporter struct {
	Diagnostics []Diagnostic
}

func (r *CollectReporter) Report(tok Token, message string) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Token: tok, Message: message})
}

// LogReporter forwards diagnostics to a commonlog logger, for hosts that want
// parse errors in their regular log stream. The host is responsible for
// configuring a commonlog backend.
type LogReporter struct {
	log commonlog.Logger
}

func NewLogReporter(name string) *LogReporter {
	return &LogReporter{log: commonlog.GetLogger(name)}
}

func (r *LogReporter) Report(tok Token, message string) {
	r.log.Error(Diagnostic{Token: tok, Message: message}.String())
}

package types

import (
	"fmt"
	gotoken "go/token"

	"github.com/gnolang/dfalex/internal/symtab"
	"github.com/gnolang/dfalex/internal/token"
)

// DiagnosticKind names the reason a scan attempt was abandoned.
type DiagnosticKind int

const (
	// UnrecognizedCharacter: the character belongs to no column.
	UnrecognizedCharacter DiagnosticKind = iota
	// InvalidTransition: the table leads to the error state.
	InvalidTransition
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnrecognizedCharacter:
		return "unrecognized-character"
	case InvalidTransition:
		return "invalid-transition"
	default:
		return "unknown"
	}
}

// Diagnostic records one skipped character. Diagnostics never stop a scan.
// Char is utf8.RuneError when the skipped byte is not valid UTF-8.
type Diagnostic struct {
	Kind     DiagnosticKind
	Filename string
	Pos      gotoken.Position
	Char     rune
	// AtEOF is set when the input ended in the middle of a lexeme.
	AtEOF bool
	// Lexeme is the partial lexeme discarded with the character.
	Lexeme string
}

// Message describes the diagnostic without its location.
func (d Diagnostic) Message() string {
	switch {
	case d.AtEOF:
		return fmt.Sprintf("unexpected end of input after %q", d.Lexeme)
	case d.Kind == UnrecognizedCharacter:
		return fmt.Sprintf("unrecognized character %q", d.Char)
	case d.Lexeme != "":
		return fmt.Sprintf("unexpected %q after %q", d.Char, d.Lexeme)
	default:
		return fmt.Sprintf("unexpected %q", d.Char)
	}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message())
}

// Result is everything one scan produces. It is read-only once returned.
type Result struct {
	Filename    string
	Tokens      []token.Token
	Symbols     *symtab.Table
	Diagnostics []Diagnostic
}

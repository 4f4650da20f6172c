// Package lexer drives a transition table over source text and produces the
// token stream and symbol table of one input.
//
// A Scanner owns all mutable scan state. It is advanced one transition at a
// time with Step, which makes every decision of the automaton observable:
//
//	s := lexer.New(src, lexer.DefaultConfig())
//	for {
//	    out := s.Step()
//	    if out.Kind == lexer.EndOfInput {
//	        break
//	    }
//	    if out.Kind == lexer.EmitToken {
//	        fmt.Println(out.Token)
//	    }
//	}
//
// Malformed input never fails a scan. The attempt is abandoned, the cursor
// moves past one character and a Diagnostic is reported.
package lexer

import (
	gotoken "go/token"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/gnolang/dfalex/internal/dfa"
	"github.com/gnolang/dfalex/internal/symtab"
	"github.com/gnolang/dfalex/internal/token"
	"github.com/gnolang/dfalex/internal/types"
)

// OutcomeKind says what a single Step did.
type OutcomeKind int

const (
	// Continue: the automaton moved and the attempt is still open, or a
	// whitespace-only attempt finished without a token.
	Continue OutcomeKind = iota
	EmitToken
	SkipInvalidChar
	EndOfInput
)

func (k OutcomeKind) String() string {
	switch k {
	case Continue:
		return "continue"
	case EmitToken:
		return "emit"
	case SkipInvalidChar:
		return "skip"
	case EndOfInput:
		return "eof"
	default:
		return "unknown"
	}
}

// Outcome is the result of one Step. Token is set for EmitToken and
// Diagnostic for SkipInvalidChar.
type Outcome struct {
	Kind       OutcomeKind
	Token      token.Token
	Diagnostic types.Diagnostic
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithFilename sets the file name recorded in diagnostics.
func WithFilename(name string) Option {
	return func(s *Scanner) { s.filename = name }
}

// WithDiagnosticHandler registers a callback invoked for every skipped
// character, in input order.
func WithDiagnosticHandler(fn func(types.Diagnostic)) Option {
	return func(s *Scanner) { s.onDiagnostic = fn }
}

// Scanner scans a single input.
type Scanner struct {
	cfg          *Config
	src          []byte
	filename     string
	onDiagnostic func(types.Diagnostic)

	pos  int
	line int
	col  int

	// current attempt
	active bool
	state  dfa.StateID
	lexeme strings.Builder

	symbols     *symtab.Table
	diagnostics []types.Diagnostic
	done        bool
}

// New returns a scanner over src. cfg is only read.
func New(src []byte, cfg *Config, opts ...Option) *Scanner {
	s := &Scanner{
		cfg:     cfg,
		src:     src,
		line:    1,
		col:     1,
		symbols: symtab.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pos returns the byte offset of the cursor.
func (s *Scanner) Pos() int {
	return s.pos
}

// Symbols returns the symbol table. It is frozen once the scanner has
// reported EndOfInput.
func (s *Scanner) Symbols() *symtab.Table {
	return s.symbols
}

// Diagnostics returns the characters skipped so far.
func (s *Scanner) Diagnostics() []types.Diagnostic {
	return s.diagnostics
}

// Step performs one transition of the automaton.
func (s *Scanner) Step() Outcome {
	if !s.active {
		if s.pos >= len(s.src) {
			if !s.done {
				s.done = true
				s.symbols.Freeze()
			}
			return Outcome{Kind: EndOfInput}
		}
		s.active = true
		s.state = s.cfg.Table.Initial()
		s.lexeme.Reset()
	}

	table := s.cfg.Table

	if s.pos >= len(s.src) {
		s.state = table.Step(s.state, dfa.ColEnd)
		return s.finish(types.InvalidTransition)
	}

	ch, width := utf8.DecodeRune(s.src[s.pos:])
	col := dfa.Classify(ch)
	if col == dfa.Invalid {
		s.state = table.ErrorState()
		return s.finish(types.UnrecognizedCharacter)
	}

	next := table.Step(s.state, col)
	if table.State(next).IsError() {
		s.state = next
		return s.finish(types.InvalidTransition)
	}

	if dfa.IsDelimiter(ch) {
		s.state = next
		if s.lexeme.Len() == 0 {
			s.lexeme.Write(s.src[s.pos : s.pos+width])
			s.advance()
		}
		return s.finish(types.InvalidTransition)
	}

	s.state = next
	if table.State(next).Lookahead {
		return s.finish(types.InvalidTransition)
	}

	s.lexeme.Write(s.src[s.pos : s.pos+width])
	s.advance()
	if table.State(next).IsAccepting() {
		return s.finish(types.InvalidTransition)
	}
	return Outcome{Kind: Continue}
}

// finish closes the current attempt. kind is used if the attempt failed.
func (s *Scanner) finish(kind types.DiagnosticKind) Outcome {
	s.active = false

	st := s.cfg.Table.State(s.state)
	if st.IsAccepting() {
		lexeme := strings.TrimSpace(s.lexeme.String())
		if lexeme == "" {
			return Outcome{Kind: Continue}
		}
		tok := ClassifyLexeme(st.Kind, lexeme, s.cfg.Reserved, s.symbols)
		return Outcome{Kind: EmitToken, Token: tok}
	}

	d := types.Diagnostic{
		Kind:     kind,
		Filename: s.filename,
		Pos: gotoken.Position{
			Filename: s.filename,
			Offset:   s.pos,
			Line:     s.line,
			Column:   s.col,
		},
		Lexeme: s.lexeme.String(),
	}
	if s.pos < len(s.src) {
		d.Char, _ = utf8.DecodeRune(s.src[s.pos:])
	} else {
		d.AtEOF = true
	}

	s.advance()
	s.diagnostics = append(s.diagnostics, d)
	if s.onDiagnostic != nil {
		s.onDiagnostic(d)
	}
	return Outcome{Kind: SkipInvalidChar, Diagnostic: d}
}

// advance moves the cursor past one character. Columns count characters;
// a byte that is not valid UTF-8 counts as one character.
func (s *Scanner) advance() {
	if s.pos >= len(s.src) {
		return
	}
	ch, width := utf8.DecodeRune(s.src[s.pos:])
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos += width
}

// Scan runs a scanner over src to completion.
func Scan(src []byte, cfg *Config, opts ...Option) *types.Result {
	s := New(src, cfg, opts...)

	var tokens []token.Token
	for tok := range s.tokens() {
		tokens = append(tokens, tok)
	}

	return &types.Result{
		Filename:    s.filename,
		Tokens:      tokens,
		Symbols:     s.symbols,
		Diagnostics: s.diagnostics,
	}
}

// Tokens returns a lazy token stream over src. Every range over the
// returned sequence starts a fresh scan.
func Tokens(src []byte, cfg *Config, opts ...Option) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for tok := range New(src, cfg, opts...).tokens() {
			if !yield(tok) {
				return
			}
		}
	}
}

func (s *Scanner) tokens() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			out := s.Step()
			switch out.Kind {
			case EndOfInput:
				return
			case EmitToken:
				if !yield(out.Token) {
					return
				}
			}
		}
	}
}

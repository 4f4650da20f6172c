package token

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
)

// ErrMalformedReserved is returned when a reserved-token table cannot be built.
var ErrMalformedReserved = errors.New("malformed reserved-token table")

var defaultLexemes = map[string]Kind{
	"class":  Class,
	"def":    Def,
	"main":   Main,
	"if":     If,
	"else":   Else,
	"while":  While,
	"for":    For,
	"return": Return,
	"import": Import,
	"from":   From,
	"in":     In,
	"pass":   Pass,

	"(":  LParen,
	")":  RParen,
	"{":  LBrace,
	"}":  RBrace,
	"[":  LBracket,
	"]":  RBracket,
	"@":  At,
	":":  Colon,
	";":  Semicolon,
	",":  Comma,
	".":  Period,
	"->": Arrow,
}

// Reserved maps exact lexemes to their reserved kind. A Reserved value is
// never modified after construction.
type Reserved struct {
	byLexeme map[string]Kind
}

// DefaultReserved returns the built-in keyword and punctuation table.
func DefaultReserved() *Reserved {
	r := &Reserved{byLexeme: make(map[string]Kind, len(defaultLexemes))}
	for lexeme, kind := range defaultLexemes {
		r.byLexeme[lexeme] = kind
	}
	return r
}

// Lookup returns the reserved kind for lexeme.
func (r *Reserved) Lookup(lexeme string) (Kind, bool) {
	kind, ok := r.byLexeme[lexeme]
	return kind, ok
}

// Len returns the number of reserved lexemes.
func (r *Reserved) Len() int {
	return len(r.byLexeme)
}

// Lexemes returns the reserved lexemes in sorted order.
func (r *Reserved) Lexemes() []string {
	lexemes := make([]string, 0, len(r.byLexeme))
	for lexeme := range r.byLexeme {
		lexemes = append(lexemes, lexeme)
	}
	sort.Strings(lexemes)
	return lexemes
}

// With returns a copy of r extended by extra. The receiver is left untouched.
// Every punctuation lexeme the scanner can produce is already reserved, so
// extra lexemes must be identifier words.
func (r *Reserved) With(extra map[string]Kind) (*Reserved, error) {
	out := &Reserved{byLexeme: make(map[string]Kind, len(r.byLexeme)+len(extra))}
	used := make(map[Kind]string, len(r.byLexeme))
	for lexeme, kind := range r.byLexeme {
		out.byLexeme[lexeme] = kind
		used[kind] = lexeme
	}

	// sorted so the reported error does not depend on map order
	lexemes := make([]string, 0, len(extra))
	for lexeme := range extra {
		lexemes = append(lexemes, lexeme)
	}
	sort.Strings(lexemes)

	for _, lexeme := range lexemes {
		kind := extra[lexeme]
		if !isWord(lexeme) {
			return nil, fmt.Errorf("%w: %q is not an identifier and can never be scanned", ErrMalformedReserved, lexeme)
		}
		if _, exists := out.byLexeme[lexeme]; exists {
			return nil, fmt.Errorf("%w: lexeme %q is already reserved", ErrMalformedReserved, lexeme)
		}
		switch kind {
		case Invalid, Blank, Ident, Number:
			return nil, fmt.Errorf("%w: id %d of %q is reserved for internal use", ErrMalformedReserved, int(kind), lexeme)
		}
		if other, taken := used[kind]; taken {
			return nil, fmt.Errorf("%w: id %d of %q is already used by %q", ErrMalformedReserved, int(kind), lexeme, other)
		}
		out.byLexeme[lexeme] = kind
		used[kind] = lexeme
	}
	return out, nil
}

// isWord reports whether lexeme scans as a single identifier: a letter or
// underscore followed by letters, digits and underscores.
func isWord(lexeme string) bool {
	if lexeme == "" {
		return false
	}
	for i, ch := range lexeme {
		switch {
		case ch == '_', unicode.IsLetter(ch):
		case i > 0 && unicode.IsDigit(ch):
		default:
			return false
		}
	}
	return true
}

package token

import "fmt"

// Kind identifies the class of a token. The numeric values are part of the
// report format and must stay stable.
type Kind int

const (
	// Blank is the kind of a whitespace run. It is never emitted.
	Blank Kind = -1
	// Invalid is the zero value.
	Invalid Kind = 0
)

// keywords
const (
	Class Kind = iota + 1
	Def
	Main
	If
	Else
	While
	For
	Return
	Import
	From
	In
	Pass
)

// punctuation and operators
const (
	LParen Kind = iota + 20
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	At
	Colon
	Semicolon
	Comma
	Period
	Arrow
)

const (
	Ident  Kind = 100
	Number Kind = 101
)

// NoIndex is the symbol index of tokens that have no symbol table entry.
const NoIndex = -1

var kindNames = map[Kind]string{
	Blank:     "BLANK",
	Invalid:   "INVALID",
	Class:     "CLASS",
	Def:       "DEF",
	Main:      "MAIN",
	If:        "IF",
	Else:      "ELSE",
	While:     "WHILE",
	For:       "FOR",
	Return:    "RETURN",
	Import:    "IMPORT",
	From:      "FROM",
	In:        "IN",
	Pass:      "PASS",
	LParen:    "LPAREN",
	RParen:    "RPAREN",
	LBrace:    "LBRACE",
	RBrace:    "RBRACE",
	LBracket:  "LBRACKET",
	RBracket:  "RBRACKET",
	At:        "AT",
	Colon:     "COLON",
	Semicolon: "SEMI",
	Comma:     "COMMA",
	Period:    "PERIOD",
	Arrow:     "ARROW",
	Ident:     "IDENT",
	Number:    "NUMBER",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// Token is a classified lexeme: its kind and, for identifiers and numerals,
// the index of the lexeme in the symbol table.
type Token struct {
	Kind  Kind
	Index int
}

// HasIndex reports whether the token refers to a symbol table entry.
func (t Token) HasIndex() bool {
	return t.Index != NoIndex
}

// String renders the token the way the report prints it: <kind, index>.
func (t Token) String() string {
	return fmt.Sprintf("<%d, %d>", int(t.Kind), t.Index)
}

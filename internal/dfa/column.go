package dfa

import "unicode"

// Column is the lexical class of a single input character. It is the second
// index into a transition table.
type Column int

const (
	// Invalid is returned for characters outside the alphabet.
	Invalid Column = -1

	ColSpace Column = iota - 1
	ColLetter
	ColDigit
	ColUnderscore
	ColLParen
	ColRParen
	ColLBrace
	ColRBrace
	ColLBracket
	ColRBracket
	ColAt
	ColColon
	ColSemicolon
	ColComma
	ColPeriod
	ColDash
	ColGreater
	// ColEnd is fed to the table once the input is exhausted.
	ColEnd

	NumColumns = int(ColEnd) + 1
)

var columnNames = [NumColumns]string{
	"ws", "letter", "digit", "_", "(", ")", "{", "}", "[", "]",
	"@", ":", ";", ",", ".", "-", ">", "EOF",
}

func (c Column) String() string {
	if c < 0 || int(c) >= NumColumns {
		return "invalid"
	}
	return columnNames[c]
}

var classes = buildClasses()

func buildClasses() [128]Column {
	var cls [128]Column
	for i := range cls {
		cls[i] = Invalid
	}
	for ch := 'a'; ch <= 'z'; ch++ {
		cls[ch] = ColLetter
	}
	for ch := 'A'; ch <= 'Z'; ch++ {
		cls[ch] = ColLetter
	}
	for ch := '0'; ch <= '9'; ch++ {
		cls[ch] = ColDigit
	}
	cls[' '] = ColSpace
	cls['\t'] = ColSpace
	cls['\n'] = ColSpace
	cls['\r'] = ColSpace
	cls['_'] = ColUnderscore
	cls['('] = ColLParen
	cls[')'] = ColRParen
	cls['{'] = ColLBrace
	cls['}'] = ColRBrace
	cls['['] = ColLBracket
	cls[']'] = ColRBracket
	cls['@'] = ColAt
	cls[':'] = ColColon
	cls[';'] = ColSemicolon
	cls[','] = ColComma
	cls['.'] = ColPeriod
	cls['-'] = ColDash
	cls['>'] = ColGreater
	return cls
}

// Classify maps a character to its column, or Invalid. Letters and decimal
// digits outside ASCII share the columns of their ASCII counterparts.
func Classify(ch rune) Column {
	if ch >= 0 && ch < 128 {
		return classes[ch]
	}
	switch {
	case ch == unicode.ReplacementChar:
		return Invalid
	case unicode.IsLetter(ch):
		return ColLetter
	case unicode.IsDigit(ch):
		return ColDigit
	}
	return Invalid
}

// IsDelimiter reports whether ch is a single-character punctuation mark that
// always ends the lexeme in progress.
func IsDelimiter(ch rune) bool {
	switch ch {
	case '(', ')', '{', '}', '[', ']', '@', ':', ';', ',', '.':
		return true
	}
	return false
}

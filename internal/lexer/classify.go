package lexer

import (
	"github.com/gnolang/dfalex/internal/symtab"
	"github.com/gnolang/dfalex/internal/token"
)

// ClassifyLexeme turns a finalized lexeme into a token. Reserved lexemes get
// their own kind and no symbol entry; everything else is interned and
// classified as a generic identifier, or as a numeral when the accepting
// state completed one.
func ClassifyLexeme(accepted token.Kind, lexeme string, reserved *token.Reserved, symbols *symtab.Table) token.Token {
	if kind, ok := reserved.Lookup(lexeme); ok {
		return token.Token{Kind: kind, Index: token.NoIndex}
	}

	kind := token.Ident
	if accepted == token.Number {
		kind = token.Number
	}
	return token.Token{Kind: kind, Index: symbols.Insert(lexeme)}
}

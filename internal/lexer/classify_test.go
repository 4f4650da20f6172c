package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnolang/dfalex/internal/symtab"
	"github.com/gnolang/dfalex/internal/token"
)

func TestClassifyLexeme(t *testing.T) {
	t.Parallel()
	reserved := token.DefaultReserved()
	symbols := symtab.New()

	assert.Equal(t, tok(token.While, na), ClassifyLexeme(token.Ident, "while", reserved, symbols))
	assert.Equal(t, tok(token.Arrow, na), ClassifyLexeme(token.Arrow, "->", reserved, symbols))
	assert.Equal(t, 0, symbols.Len())

	assert.Equal(t, tok(token.Ident, 0), ClassifyLexeme(token.Ident, "whilst", reserved, symbols))
	assert.Equal(t, tok(token.Number, 1), ClassifyLexeme(token.Number, "42", reserved, symbols))
	assert.Equal(t, tok(token.Ident, 0), ClassifyLexeme(token.Ident, "whilst", reserved, symbols))
	assert.Equal(t, []string{"whilst", "42"}, symbols.Entries())
}

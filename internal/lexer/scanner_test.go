package lexer

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/dfalex/internal/token"
	"github.com/gnolang/dfalex/internal/types"
)

const na = token.NoIndex

func tok(kind token.Kind, index int) token.Token {
	return token.Token{Kind: kind, Index: index}
}

func TestScan(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		input   string
		tokens  []token.Token
		symbols []string
		skipped int
	}{
		{
			name:  "call statement",
			input: "foo(bar);",
			tokens: []token.Token{
				tok(token.Ident, 0), tok(token.LParen, na), tok(token.Ident, 1),
				tok(token.RParen, na), tok(token.Semicolon, na),
			},
			symbols: []string{"foo", "bar"},
		},
		{
			name:  "whitespace only",
			input: "  \n\t  ",
		},
		{
			name:  "empty input",
			input: "",
		},
		{
			name:    "arrow operator",
			input:   "x->y",
			tokens:  []token.Token{tok(token.Ident, 0), tok(token.Arrow, na), tok(token.Ident, 1)},
			symbols: []string{"x", "y"},
		},
		{
			name:    "arrow with spaces",
			input:   "a -> b",
			tokens:  []token.Token{tok(token.Ident, 0), tok(token.Arrow, na), tok(token.Ident, 1)},
			symbols: []string{"a", "b"},
		},
		{
			name:    "repeated identifier shares an index",
			input:   "count count",
			tokens:  []token.Token{tok(token.Ident, 0), tok(token.Ident, 0)},
			symbols: []string{"count"},
		},
		{
			name:  "keywords never reach the symbol table",
			input: "class classy: def main()",
			tokens: []token.Token{
				tok(token.Class, na), tok(token.Ident, 0), tok(token.Colon, na),
				tok(token.Def, na), tok(token.Main, na), tok(token.LParen, na), tok(token.RParen, na),
			},
			symbols: []string{"classy"},
		},
		{
			name:  "identifiers mix letters digits and underscores",
			input: "_a1 b_2c",
			tokens: []token.Token{
				tok(token.Ident, 0), tok(token.Ident, 1),
			},
			symbols: []string{"_a1", "b_2c"},
		},
		{
			name:  "numerals",
			input: "x[10],y[10]",
			tokens: []token.Token{
				tok(token.Ident, 0), tok(token.LBracket, na), tok(token.Number, 1), tok(token.RBracket, na),
				tok(token.Comma, na),
				tok(token.Ident, 2), tok(token.LBracket, na), tok(token.Number, 1), tok(token.RBracket, na),
			},
			symbols: []string{"x", "10", "y"},
		},
		{
			name:  "all punctuation",
			input: "(){}[]@:;,.",
			tokens: []token.Token{
				tok(token.LParen, na), tok(token.RParen, na), tok(token.LBrace, na), tok(token.RBrace, na),
				tok(token.LBracket, na), tok(token.RBracket, na), tok(token.At, na), tok(token.Colon, na),
				tok(token.Semicolon, na), tok(token.Comma, na), tok(token.Period, na),
			},
		},
		{
			name:    "decorator and attribute access",
			input:   "@app.route",
			tokens:  []token.Token{tok(token.At, na), tok(token.Ident, 0), tok(token.Period, na), tok(token.Ident, 1)},
			symbols: []string{"app", "route"},
		},
		{
			name:    "unrecognized character between tokens",
			input:   "a $ b",
			tokens:  []token.Token{tok(token.Ident, 0), tok(token.Ident, 1)},
			symbols: []string{"a", "b"},
			skipped: 1,
		},
		{
			// the attempt holding "a" fails on '$' and is discarded with it
			name:    "unrecognized character glued to identifiers",
			input:   "a$b",
			tokens:  []token.Token{tok(token.Ident, 0)},
			symbols: []string{"b"},
			skipped: 1,
		},
		{
			name:    "lone closing angle",
			input:   "a > b",
			tokens:  []token.Token{tok(token.Ident, 0), tok(token.Ident, 1)},
			symbols: []string{"a", "b"},
			skipped: 1,
		},
		{
			name:    "dash without angle drops the next character",
			input:   "a - b",
			tokens:  []token.Token{tok(token.Ident, 0), tok(token.Ident, 1)},
			symbols: []string{"a", "b"},
			skipped: 1,
		},
		{
			name:    "dash at end of input",
			input:   "a -",
			tokens:  []token.Token{tok(token.Ident, 0)},
			symbols: []string{"a"},
			skipped: 1,
		},
		{
			name:    "numeral followed by letters",
			input:   "12ab;",
			tokens:  []token.Token{tok(token.Ident, 0), tok(token.Semicolon, na)},
			symbols: []string{"b"},
			skipped: 1,
		},
		{
			name:    "unicode letters form identifiers",
			input:   "café",
			tokens:  []token.Token{tok(token.Ident, 0)},
			symbols: []string{"café"},
		},
		{
			name:    "unicode digits form numerals",
			input:   "x ٣٤;",
			tokens:  []token.Token{tok(token.Ident, 0), tok(token.Number, 1), tok(token.Semicolon, na)},
			symbols: []string{"x", "٣٤"},
		},
		{
			name:    "multi-byte symbol is skipped as one character",
			input:   "€;",
			tokens:  []token.Token{tok(token.Semicolon, na)},
			skipped: 1,
		},
		{
			name:    "invalid utf-8 byte is skipped alone",
			input:   "\xffab",
			tokens:  []token.Token{tok(token.Ident, 0)},
			symbols: []string{"ab"},
			skipped: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Scan([]byte(tt.input), cfg)

			assert.Equal(t, tt.tokens, res.Tokens)
			if tt.symbols == nil {
				assert.Equal(t, 0, res.Symbols.Len())
			} else {
				assert.Equal(t, tt.symbols, res.Symbols.Entries())
			}
			assert.Len(t, res.Diagnostics, tt.skipped)
			assert.True(t, res.Symbols.Frozen())
		})
	}
}

func TestDelimiterIsNotPartOfIdentifier(t *testing.T) {
	t.Parallel()
	res := Scan([]byte("name;"), DefaultConfig())

	require.Equal(t, []token.Token{tok(token.Ident, 0), tok(token.Semicolon, na)}, res.Tokens)
	lexeme, ok := res.Symbols.Lexeme(0)
	require.True(t, ok)
	assert.Equal(t, "name", lexeme)
}

func TestSymbolIndicesFollowFirstOccurrence(t *testing.T) {
	t.Parallel()
	res := Scan([]byte("c b c a b d"), DefaultConfig())

	var indices []int
	for _, tk := range res.Tokens {
		indices = append(indices, tk.Index)
	}
	assert.Equal(t, []int{0, 1, 0, 2, 1, 3}, indices)
	assert.Equal(t, []string{"c", "b", "a", "d"}, res.Symbols.Entries())
}

func TestStepOutcomes(t *testing.T) {
	t.Parallel()
	s := New([]byte("ab;"), DefaultConfig())

	out := s.Step()
	assert.Equal(t, Continue, out.Kind)
	assert.Equal(t, 1, s.Pos())

	out = s.Step()
	assert.Equal(t, Continue, out.Kind)
	assert.Equal(t, 2, s.Pos())

	// ';' ends the identifier without being consumed
	out = s.Step()
	assert.Equal(t, EmitToken, out.Kind)
	assert.Equal(t, tok(token.Ident, 0), out.Token)
	assert.Equal(t, 2, s.Pos())

	out = s.Step()
	assert.Equal(t, EmitToken, out.Kind)
	assert.Equal(t, tok(token.Semicolon, na), out.Token)
	assert.Equal(t, 3, s.Pos())

	assert.False(t, s.Symbols().Frozen())
	assert.Equal(t, EndOfInput, s.Step().Kind)
	assert.Equal(t, EndOfInput, s.Step().Kind)
	assert.True(t, s.Symbols().Frozen())
}

func TestStepSkip(t *testing.T) {
	t.Parallel()
	s := New([]byte("a\n #"), DefaultConfig(), WithFilename("in.txt"))

	var kinds []OutcomeKind
	var skipped []types.Diagnostic
	for {
		out := s.Step()
		kinds = append(kinds, out.Kind)
		if out.Kind == SkipInvalidChar {
			skipped = append(skipped, out.Diagnostic)
		}
		if out.Kind == EndOfInput {
			break
		}
	}

	assert.Equal(t, []OutcomeKind{Continue, EmitToken, Continue, Continue, SkipInvalidChar, EndOfInput}, kinds)
	require.Len(t, skipped, 1)

	d := skipped[0]
	assert.Equal(t, types.UnrecognizedCharacter, d.Kind)
	assert.Equal(t, '#', d.Char)
	assert.Equal(t, "in.txt", d.Filename)
	assert.Equal(t, 3, d.Pos.Offset)
	assert.Equal(t, 2, d.Pos.Line)
	assert.Equal(t, 2, d.Pos.Column)
	assert.Equal(t, "in.txt:2:2: unrecognized character '#'", d.String())
}

func TestDiagnosticHandler(t *testing.T) {
	t.Parallel()
	var got []types.Diagnostic
	res := Scan([]byte("x-y >"), DefaultConfig(), WithDiagnosticHandler(func(d types.Diagnostic) {
		got = append(got, d)
	}))

	require.Len(t, got, 2)
	assert.Equal(t, res.Diagnostics, got)

	assert.Equal(t, types.InvalidTransition, got[0].Kind)
	assert.Equal(t, 'y', got[0].Char)
	assert.Equal(t, "-", got[0].Lexeme)
	assert.Equal(t, `unexpected 'y' after "-"`, got[0].Message())

	assert.Equal(t, types.InvalidTransition, got[1].Kind)
	assert.Equal(t, '>', got[1].Char)
	assert.Equal(t, "", got[1].Lexeme)
}

func TestDiagnosticMultiByteCharacter(t *testing.T) {
	t.Parallel()
	res := Scan([]byte("é €\n\xff"), DefaultConfig())

	assert.Equal(t, []token.Token{tok(token.Ident, 0)}, res.Tokens)
	require.Len(t, res.Diagnostics, 2)

	d := res.Diagnostics[0]
	assert.Equal(t, types.UnrecognizedCharacter, d.Kind)
	assert.Equal(t, '€', d.Char)
	assert.Equal(t, 3, d.Pos.Offset)
	assert.Equal(t, 1, d.Pos.Line)
	assert.Equal(t, 3, d.Pos.Column)
	assert.Equal(t, "unrecognized character '€'", d.Message())

	d = res.Diagnostics[1]
	assert.Equal(t, utf8.RuneError, d.Char)
	assert.Equal(t, 7, d.Pos.Offset)
	assert.Equal(t, 2, d.Pos.Line)
	assert.Equal(t, 1, d.Pos.Column)
}

func TestDiagnosticAtEndOfInput(t *testing.T) {
	t.Parallel()
	res := Scan([]byte("-"), DefaultConfig())

	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.True(t, d.AtEOF)
	assert.Equal(t, 1, d.Pos.Offset)
	assert.Equal(t, `unexpected end of input after "-"`, d.Message())
	assert.Empty(t, res.Tokens)
}

func TestForwardProgress(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"foo(bar);",
		"$$$$",
		"a$b$c$",
		"->->-->>",
		"12ab 34cd",
		"\x00\x01\x02",
		"((((",
		"x - - - y",
		"é€\xff\xfe日本",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			s := New([]byte(input), DefaultConfig())
			last := -1
			steps := 0
			for {
				out := s.Step()
				steps++
				require.LessOrEqual(t, steps, 2*len(input)+2, "scanner does not make progress")

				if out.Kind == EndOfInput {
					break
				}
				if out.Kind == EmitToken || out.Kind == SkipInvalidChar {
					require.Greater(t, s.Pos(), last)
					last = s.Pos()
				}
			}
			assert.Equal(t, len(input), s.Pos())
		})
	}
}

func TestDeterminism(t *testing.T) {
	t.Parallel()
	input := []byte("def f(a, b) -> c: return a.b; # x\nclass K: pass")
	cfg := DefaultConfig()

	first := Scan(input, cfg)
	for i := 0; i < 5; i++ {
		again := Scan(input, cfg)
		assert.Equal(t, first.Tokens, again.Tokens)
		assert.True(t, first.Symbols.Equal(again.Symbols))
		assert.Equal(t, first.Diagnostics, again.Diagnostics)
	}
}

func TestTokensIsLazyAndRestartable(t *testing.T) {
	t.Parallel()
	seq := Tokens([]byte("a b c d"), DefaultConfig())

	var firstTwo []token.Token
	for tk := range seq {
		firstTwo = append(firstTwo, tk)
		if len(firstTwo) == 2 {
			break
		}
	}
	assert.Equal(t, []token.Token{tok(token.Ident, 0), tok(token.Ident, 1)}, firstTwo)

	var all []token.Token
	for tk := range seq {
		all = append(all, tk)
	}
	assert.Len(t, all, 4)
	assert.Equal(t, firstTwo, all[:2])
}

func TestExtendedReservedTable(t *testing.T) {
	t.Parallel()
	reserved, err := token.DefaultReserved().With(map[string]token.Kind{"let": 40})
	require.NoError(t, err)
	cfg, err := NewConfig(DefaultConfig().Table, reserved)
	require.NoError(t, err)

	res := Scan([]byte("let x"), cfg)
	assert.Equal(t, []token.Token{tok(40, na), tok(token.Ident, 0)}, res.Tokens)
}

func TestNewConfigRejectsNil(t *testing.T) {
	t.Parallel()
	_, err := NewConfig(nil, token.DefaultReserved())
	assert.Error(t, err)
	_, err = NewConfig(DefaultConfig().Table, nil)
	assert.Error(t, err)
}

func FuzzScan(f *testing.F) {
	for _, seed := range []string{"foo(bar);", "x->y", "  \n", "a$b", "12ab", "-"} {
		f.Add([]byte(seed))
	}
	cfg := DefaultConfig()

	f.Fuzz(func(t *testing.T, src []byte) {
		a := Scan(src, cfg)
		b := Scan(src, cfg)
		if len(a.Tokens) != len(b.Tokens) || !a.Symbols.Equal(b.Symbols) {
			t.Fatalf("non-deterministic scan of %q", src)
		}
		for _, tk := range a.Tokens {
			if tk.Kind == token.Ident || tk.Kind == token.Number {
				if _, ok := a.Symbols.Lexeme(tk.Index); !ok {
					t.Fatalf("token %v refers to a missing symbol", tk)
				}
			} else if tk.Index != token.NoIndex {
				t.Fatalf("reserved token %v has a symbol index", tk)
			}
		}
	})
}

package internal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	tt "github.com/gnolang/dfalex/internal/types"
)

// WriteReport writes the plain-text report of one scan: one <kind, index>
// line per token in emission order, then the symbol table as "index: lexeme"
// lines, then optionally the skipped characters.
func WriteReport(w io.Writer, res *tt.Result, withErrors bool) error {
	bw := bufio.NewWriter(w)

	for _, tok := range res.Tokens {
		fmt.Fprintln(bw, tok)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Symbol Table:")
	for i, lexeme := range res.Symbols.All() {
		fmt.Fprintf(bw, "%d: %s\n", i, lexeme)
	}

	if withErrors {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "Errors:")
		for _, d := range res.Diagnostics {
			fmt.Fprintln(bw, d)
		}
	}

	return bw.Flush()
}

type jsonDiagnostic struct {
	Kind    string `json:"kind"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset"`
	Message string `json:"message"`
}

type jsonResult struct {
	Tokens  [][2]int         `json:"tokens"`
	Symbols []string         `json:"symbols"`
	Errors  []jsonDiagnostic `json:"errors"`
}

// WriteJSON writes all results as one JSON object keyed by file name.
func WriteJSON(w io.Writer, results []*tt.Result) error {
	out := make(map[string]jsonResult, len(results))
	for _, res := range results {
		jr := jsonResult{
			Tokens:  make([][2]int, 0, len(res.Tokens)),
			Symbols: make([]string, 0, res.Symbols.Len()),
			Errors:  make([]jsonDiagnostic, 0, len(res.Diagnostics)),
		}
		jr.Symbols = append(jr.Symbols, res.Symbols.Entries()...)
		for _, tok := range res.Tokens {
			jr.Tokens = append(jr.Tokens, [2]int{int(tok.Kind), tok.Index})
		}
		for _, d := range res.Diagnostics {
			jr.Errors = append(jr.Errors, jsonDiagnostic{
				Kind:    d.Kind.String(),
				Line:    d.Pos.Line,
				Column:  d.Pos.Column,
				Offset:  d.Pos.Offset,
				Message: d.Message(),
			})
		}
		out[res.Filename] = jr
	}

	d, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("error marshalling results to JSON: %w", err)
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

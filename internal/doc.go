// Package internal provides the core of the dfalex lexical analyzer.
//
// The lexing itself lives in the sub-packages:
//
// dfa: the character classifier and the transition table. The table is a dense
// (state, column) grid of tagged states: one initial state, accumulating
// states, accepting states that carry the token kind they complete, and one
// absorbing error state.
//
// lexer: the scanner that drives a table over an input one transition at a
// time, and the token classifier that resolves finished lexemes against the
// reserved-token table.
//
// symtab: the insertion-ordered symbol table of identifier lexemes.
//
// token: token kinds and the reserved-token table.
//
// This package ties them together:
//
// Engine: reads files and scans them with a shared, immutable configuration.
// Each run owns its scanner and symbol table, so one engine serves concurrent
// scans of independent files.
//
// WriteReport / WriteJSON: the token and symbol table report.
//
// FormatDiagnostics: renders skipped characters against the source line.
//
// Usage:
//
//	engine := internal.NewEngine(nil, lexer.DefaultConfig(), logger)
//
//	res, err := engine.Run("path/to/input.txt")
//	if err != nil {
//	    // handle error
//	}
//
//	_ = internal.WriteReport(os.Stdout, res, true)
//
// This package is intended for internal use within dfalex and should not be
// imported by external packages.
package internal

package dfa

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gnolang/dfalex/internal/token"
)

// ErrMalformedTable is returned when a transition table violates one of the
// automaton invariants. It is a configuration error, never an input error.
var ErrMalformedTable = errors.New("malformed transition table")

// Table is a dense, total transition table. It is immutable once built and
// can be shared between any number of concurrent scans.
type Table struct {
	states  []State
	rows    [][]StateID
	initial StateID
	err     StateID
}

// NewTable builds a table from state descriptors and one row of NumColumns
// targets per state, and validates it.
func NewTable(states []State, rows [][]StateID) (*Table, error) {
	t := &Table{
		states: append([]State(nil), states...),
		rows:   make([][]StateID, len(rows)),
	}
	for i, row := range rows {
		t.rows[i] = append([]StateID(nil), row...)
	}
	initial, errState, err := t.check()
	if err != nil {
		return nil, err
	}
	t.initial, t.err = initial, errState
	return t, nil
}

// Validate checks the automaton invariants. It only reads the table.
func (t *Table) Validate() error {
	_, _, err := t.check()
	return err
}

// check validates the table and locates its initial and error states.
func (t *Table) check() (initial, errState StateID, err error) {
	fail := func(format string, args ...any) (StateID, StateID, error) {
		return 0, 0, fmt.Errorf("%w: "+format, append([]any{ErrMalformedTable}, args...)...)
	}

	if len(t.states) == 0 {
		return fail("no states")
	}
	if len(t.rows) != len(t.states) {
		return fail("%d rows for %d states", len(t.rows), len(t.states))
	}

	initials, errs := 0, 0
	for id, st := range t.states {
		switch st.Phase {
		case Initial:
			initials++
			initial = StateID(id)
		case Error:
			errs++
			errState = StateID(id)
		case Accepting:
			if st.Kind == token.Invalid {
				return fail("accepting state %d has no token kind", id)
			}
		case Accumulating:
		default:
			return fail("state %d has unknown phase %d", id, st.Phase)
		}
		if st.Lookahead && st.Phase != Accepting {
			return fail("lookahead state %d is not accepting", id)
		}
	}
	if initials != 1 {
		return fail("want exactly one initial state, have %d", initials)
	}
	if errs != 1 {
		return fail("want exactly one error state, have %d", errs)
	}

	for id, row := range t.rows {
		if len(row) != NumColumns {
			return fail("state %d has %d columns, want %d", id, len(row), NumColumns)
		}
		for col, next := range row {
			if next < 0 || int(next) >= len(t.states) {
				return fail("state %d column %s leads to unknown state %d", id, Column(col), next)
			}
		}
	}

	for col, next := range t.rows[errState] {
		if next != errState {
			return fail("error state escapes to %d on %s", next, Column(col))
		}
	}
	// an attempt must consume at least one character before it can end
	for col, next := range t.rows[initial] {
		if t.states[next].Lookahead {
			return fail("initial state accepts without consuming on %s", Column(col))
		}
	}
	return initial, errState, nil
}

// Step returns the state reached from `from` on column `col`. Invalid columns
// and unknown states lead to the error state.
func (t *Table) Step(from StateID, col Column) StateID {
	if col < 0 || int(col) >= NumColumns || from < 0 || int(from) >= len(t.rows) {
		return t.err
	}
	return t.rows[from][col]
}

// State returns the descriptor of id.
func (t *Table) State(id StateID) State {
	if id < 0 || int(id) >= len(t.states) {
		return t.states[t.err]
	}
	return t.states[id]
}

func (t *Table) Initial() StateID    { return t.initial }
func (t *Table) ErrorState() StateID { return t.err }
func (t *Table) NumStates() int      { return len(t.states) }

// Format writes the table as an aligned grid, one row per state.
func (t *Table) Format(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\tstate\t")
	for col := 0; col < NumColumns; col++ {
		fmt.Fprintf(tw, "%s\t", Column(col))
	}
	fmt.Fprintln(tw)
	for id, row := range t.rows {
		fmt.Fprintf(tw, "%d\t%s\t", id, t.states[id])
		for _, next := range row {
			fmt.Fprintf(tw, "%d\t", next)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// builder assembles a table row by row. Unset cells lead to the error state.
type builder struct {
	states []State
	rows   [][]StateID
}

func (b *builder) add(st State) StateID {
	row := make([]StateID, NumColumns)
	for i := range row {
		row[i] = -1
	}
	b.states = append(b.states, st)
	b.rows = append(b.rows, row)
	return StateID(len(b.states) - 1)
}

func (b *builder) set(from StateID, col Column, to StateID) {
	b.rows[from][col] = to
}

func (b *builder) build(errState StateID) (*Table, error) {
	for _, row := range b.rows {
		for col, next := range row {
			if next < 0 {
				row[col] = errState
			}
		}
	}
	return NewTable(b.states, b.rows)
}

var punctuation = []struct {
	col  Column
	kind token.Kind
}{
	{ColLParen, token.LParen},
	{ColRParen, token.RParen},
	{ColLBrace, token.LBrace},
	{ColRBrace, token.RBrace},
	{ColLBracket, token.LBracket},
	{ColRBracket, token.RBracket},
	{ColAt, token.At},
	{ColColon, token.Colon},
	{ColSemicolon, token.Semicolon},
	{ColComma, token.Comma},
	{ColPeriod, token.Period},
}

// Default returns the transition table of the language: identifiers,
// numerals, single-character punctuation and the `->` operator.
func Default() *Table {
	var b builder

	start := b.add(State{Phase: Initial})
	errState := b.add(State{Phase: Error})

	ident := b.add(State{Phase: Accumulating, Kind: token.Ident})
	number := b.add(State{Phase: Accumulating, Kind: token.Number})
	dash := b.add(State{Phase: Accumulating, Kind: token.Arrow})

	blank := b.add(State{Phase: Accepting, Kind: token.Blank})
	identEnd := b.add(State{Phase: Accepting, Kind: token.Ident, Lookahead: true})
	numberEnd := b.add(State{Phase: Accepting, Kind: token.Number, Lookahead: true})
	arrow := b.add(State{Phase: Accepting, Kind: token.Arrow})

	b.set(start, ColSpace, blank)
	b.set(start, ColLetter, ident)
	b.set(start, ColUnderscore, ident)
	b.set(start, ColDigit, number)
	b.set(start, ColDash, dash)
	for _, p := range punctuation {
		b.set(start, p.col, b.add(State{Phase: Accepting, Kind: p.kind}))
	}

	for col := Column(0); int(col) < NumColumns; col++ {
		switch col {
		case ColLetter, ColDigit, ColUnderscore:
			b.set(ident, col, ident)
		default:
			b.set(ident, col, identEnd)
		}

		switch col {
		case ColDigit:
			b.set(number, col, number)
		case ColLetter, ColUnderscore:
			// left as error: 12ab is not a numeral
		default:
			b.set(number, col, numberEnd)
		}
	}

	b.set(dash, ColGreater, arrow)

	t, err := b.build(errState)
	if err != nil {
		panic(err)
	}
	return t
}

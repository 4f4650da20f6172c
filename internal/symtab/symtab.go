// Package symtab interns identifier lexemes.
//
// Entries live in a single slice and are referred to by their position in it,
// the same arena layout the rest of the project uses for index-addressed
// storage: an entry's index never changes and indices are dense, zero based
// and assigned in first-occurrence order. A reverse index maps each lexeme
// back to its slot.
package symtab

import (
	"iter"
	"strconv"
	"strings"
)

// NoIndex is returned for lexemes that are not stored.
const NoIndex = -1

// Table is an insertion-ordered set of lexemes. It grows during one scan and
// is frozen before being handed to the caller.
type Table struct {
	entries []string
	index   map[string]int
	frozen  bool
}

// New returns an empty table.
func New() *Table {
	return &Table{
		entries: make([]string, 0, 64),
		index:   make(map[string]int),
	}
}

// Insert stores lexeme if it is new and returns its index. Surrounding
// whitespace is ignored; a blank lexeme is not stored and yields NoIndex.
func (t *Table) Insert(lexeme string) int {
	lexeme = strings.TrimSpace(lexeme)
	if lexeme == "" {
		return NoIndex
	}
	if idx, ok := t.index[lexeme]; ok {
		return idx
	}
	if t.frozen {
		panic("symtab: insert into frozen table")
	}

	idx := len(t.entries)
	t.entries = append(t.entries, lexeme)
	t.index[lexeme] = idx
	return idx
}

// Lookup returns the index of lexeme. Surrounding whitespace is ignored, as
// in Insert.
func (t *Table) Lookup(lexeme string) (int, bool) {
	idx, ok := t.index[strings.TrimSpace(lexeme)]
	return idx, ok
}

// Lexeme returns the entry stored at idx.
func (t *Table) Lexeme(idx int) (string, bool) {
	if idx < 0 || idx >= len(t.entries) {
		return "", false
	}
	return t.entries[idx], true
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// All yields (index, lexeme) pairs in ascending index order.
func (t *Table) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, lexeme := range t.entries {
			if !yield(i, lexeme) {
				return
			}
		}
	}
}

// Entries returns a copy of the lexemes ordered by index.
func (t *Table) Entries() []string {
	return append([]string(nil), t.entries...)
}

// Freeze makes the table read-only. Looking up an existing lexeme through
// Insert still works; storing a new one panics.
func (t *Table) Freeze() {
	t.frozen = true
}

// Frozen reports whether Freeze was called.
func (t *Table) Frozen() bool {
	return t.frozen
}

// Equal reports whether both tables hold the same lexemes at the same indices.
func (t *Table) Equal(other *Table) bool {
	if len(t.entries) != len(other.entries) {
		return false
	}
	for i := range t.entries {
		if t.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// String dumps the table as "index: lexeme" lines.
func (t *Table) String() string {
	var sb strings.Builder
	for i, lexeme := range t.entries {
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(lexeme)
		sb.WriteByte('\n')
	}
	return sb.String()
}

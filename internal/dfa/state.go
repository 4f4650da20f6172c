package dfa

import (
	"fmt"

	"github.com/gnolang/dfalex/internal/token"
)

// Phase tags a state with its role in one scan attempt.
type Phase uint8

const (
	Initial Phase = iota
	Accumulating
	Accepting
	Error
)

func (p Phase) String() string {
	switch p {
	case Initial:
		return "initial"
	case Accumulating:
		return "accumulating"
	case Accepting:
		return "accepting"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// State describes one automaton state.
//
// Kind is the token kind being accumulated or completed. Lookahead marks an
// accepting state entered on the first character past the lexeme; the
// scanner leaves that character in the input.
type State struct {
	Phase     Phase
	Kind      token.Kind
	Lookahead bool
}

// StateID indexes the rows of a Table.
type StateID int

func (s State) String() string {
	switch s.Phase {
	case Initial, Error:
		return s.Phase.String()
	case Accepting:
		if s.Lookahead {
			return fmt.Sprintf("accept(%s)*", s.Kind)
		}
		return fmt.Sprintf("accept(%s)", s.Kind)
	default:
		return fmt.Sprintf("%s(%s)", s.Phase, s.Kind)
	}
}

// IsAccepting reports whether the state completes a lexeme.
func (s State) IsAccepting() bool { return s.Phase == Accepting }

// IsError reports whether the state is the absorbing error state.
func (s State) IsError() bool { return s.Phase == Error }

package lexer

import (
	"errors"
	"fmt"

	"github.com/gnolang/dfalex/internal/dfa"
	"github.com/gnolang/dfalex/internal/token"
)

// Config is the immutable configuration shared by every scan: the
// transition table and the reserved-token table.
type Config struct {
	Table    *dfa.Table
	Reserved *token.Reserved
}

// DefaultConfig returns the built-in language.
func DefaultConfig() *Config {
	return &Config{
		Table:    dfa.Default(),
		Reserved: token.DefaultReserved(),
	}
}

// NewConfig validates table and reserved and bundles them.
func NewConfig(table *dfa.Table, reserved *token.Reserved) (*Config, error) {
	if table == nil {
		return nil, errors.New("lexer: nil transition table")
	}
	if reserved == nil {
		return nil, errors.New("lexer: nil reserved-token table")
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("lexer: %w", err)
	}
	return &Config{Table: table, Reserved: reserved}, nil
}

package lex

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/gnolang/dfalex/internal/dfa"
	"github.com/gnolang/dfalex/internal/lexer"
	"github.com/gnolang/dfalex/internal/token"
)

// DefaultConfigPath is read when no configuration file is given. Unlike an
// explicit path it may be missing.
const DefaultConfigPath = ".dfalex.yaml"

// Config represents the configuration file.
type Config struct {
	Name string `yaml:"name"`
	// Extensions selects the files scanned when a directory is given.
	Extensions []string `yaml:"extensions"`
	// Keywords adds reserved words to the built-in table, mapped to their
	// token id.
	Keywords map[string]int `yaml:"keywords"`
	Report   ReportConfig   `yaml:"report"`
}

type ReportConfig struct {
	// Errors appends the skipped characters to the text report.
	Errors bool `yaml:"errors"`
}

// DefaultConfig returns the configuration used without a configuration file.
func DefaultConfig() Config {
	return Config{
		Name:       "dfalex",
		Extensions: []string{".txt", ".src"},
		Keywords:   map[string]int{},
		Report:     ReportConfig{Errors: true},
	}
}

// LoadConfig reads the configuration file at path on top of the defaults.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	config := DefaultConfig()
	if fs == nil {
		fs = afero.NewOsFs()
	}

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	f, err := fs.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("error opening configuration file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("error parsing configuration file %s: %w", path, err)
	}

	return config, nil
}

// Build validates the configuration and produces the immutable lexer
// configuration shared by every scan.
func (c Config) Build() (*lexer.Config, error) {
	extra := make(map[string]token.Kind, len(c.Keywords))
	for lexeme, id := range c.Keywords {
		extra[lexeme] = token.Kind(id)
	}

	reserved, err := token.DefaultReserved().With(extra)
	if err != nil {
		return nil, err
	}
	return lexer.NewConfig(dfa.Default(), reserved)
}

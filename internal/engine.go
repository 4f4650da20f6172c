package internal

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gnolang/dfalex/internal/lexer"
	tt "github.com/gnolang/dfalex/internal/types"
)

// Engine scans files with one shared, read-only lexer configuration.
// Every run gets its own scanner and symbol table, so an Engine can be used
// from many goroutines at once.
type Engine struct {
	fs     afero.Fs
	cfg    *lexer.Config
	logger *zap.Logger
}

// NewEngine creates a new scan engine. A nil fs reads from the OS and a nil
// logger discards everything.
func NewEngine(fs afero.Fs, cfg *lexer.Config, logger *zap.Logger) *Engine {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if cfg == nil {
		cfg = lexer.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{fs: fs, cfg: cfg, logger: logger}
}

// Config returns the lexer configuration used by the engine.
func (e *Engine) Config() *lexer.Config {
	return e.cfg
}

// Fs returns the filesystem files are read from.
func (e *Engine) Fs() afero.Fs {
	return e.fs
}

// Run scans the given file.
func (e *Engine) Run(filename string) (*tt.Result, error) {
	src, err := afero.ReadFile(e.fs, filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return e.RunSource(filename, src), nil
}

// RunSource scans src. name is only used in diagnostics.
func (e *Engine) RunSource(name string, src []byte) *tt.Result {
	res := lexer.Scan(src, e.cfg,
		lexer.WithFilename(name),
		lexer.WithDiagnosticHandler(func(d tt.Diagnostic) {
			e.logger.Debug("skipped character",
				zap.String("file", name),
				zap.Stringer("kind", d.Kind),
				zap.Int("line", d.Pos.Line),
				zap.Int("column", d.Pos.Column),
				zap.String("char", fmt.Sprintf("%q", d.Char)),
				zap.String("discarded", d.Lexeme),
			)
		}),
	)

	e.logger.Debug("scanned",
		zap.String("file", name),
		zap.Int("tokens", len(res.Tokens)),
		zap.Int("symbols", res.Symbols.Len()),
		zap.Int("skipped", len(res.Diagnostics)),
	)
	return res
}

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(fs afero.Fs, filename string) (*SourceCode, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	content, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	return &SourceCode{Lines: lines}, nil
}

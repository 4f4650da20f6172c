// Package lex is the public entry point of dfalex: it loads the
// configuration, builds the scan engine and scans files, directories and
// in-memory sources.
package lex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnolang/dfalex/internal"
	tt "github.com/gnolang/dfalex/internal/types"
	"github.com/gnolang/dfalex/scanner"
)

// ErrNoPaths is returned when there is nothing to scan.
var ErrNoPaths = errors.New("no file or directory paths given")

type LexEngine interface {
	// Fs is the filesystem paths are resolved against.
	Fs() afero.Fs
	Run(filePath string) (*tt.Result, error)
	RunSource(name string, source []byte) *tt.Result
}

// New builds a scan engine from a loaded configuration.
func New(fs afero.Fs, config Config, logger *zap.Logger) (*internal.Engine, error) {
	cfg, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return internal.NewEngine(fs, cfg, logger), nil
}

// ProcessSources scans in-memory sources concurrently. Results keep the order
// of sources.
func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine LexEngine,
	sources [][]byte,
) ([]*tt.Result, error) {
	results := make([]*tt.Result, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, source := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = engine.RunSource(fmt.Sprintf("<source %d>", i), source)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if logger != nil {
			logger.Error("Error processing sources", zap.Error(err))
		}
		return nil, err
	}

	return results, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LexEngine,
	paths []string,
	extensions []string,
	processor func(LexEngine, string) (*tt.Result, error),
) ([]*tt.Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	var allResults []*tt.Result
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, extensions, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allResults = append(allResults, results...)
	}

	return allResults, nil
}

// ProcessPath scans one file, or every file with a matching extension under a
// directory. Directory entries are scanned by a bounded pool of workers;
// files that cannot be read are logged and left out.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LexEngine,
	path string,
	extensions []string,
	processor func(LexEngine, string) (*tt.Result, error),
) ([]*tt.Result, error) {
	fs := engine.Fs()
	if fs == nil {
		fs = afero.NewOsFs()
	}

	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		res, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		return []*tt.Result{res}, nil
	}

	files, err := scanner.New(fs, path, extensions...).Scan()
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	// one slot per file keeps the output in path order
	slots := make([]*tt.Result, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var wg sync.WaitGroup
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, fp string) {
			defer wg.Done()
			defer func() { <-sem }()

			res, err := processor(engine, fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
			} else {
				slots[i] = res
			}
			_ = bar.Add(1)
		}(i, file.Path)
	}
	wg.Wait()
	_ = bar.Finish()

	results := make([]*tt.Result, 0, len(slots))
	for _, res := range slots {
		if res != nil {
			results = append(results, res)
		}
	}
	return results, nil
}

func ProcessFile(engine LexEngine, filePath string) (*tt.Result, error) {
	return engine.Run(filePath)
}

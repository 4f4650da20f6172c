package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/dfalex/internal"
	tt "github.com/gnolang/dfalex/internal/types"
	"github.com/gnolang/dfalex/lex"
)

var (
	scanJsonOutput bool
	outPath        string
	showErrors     bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Scan files and print their tokens and symbol tables",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		config, err := lex.LoadConfig(afero.NewOsFs(), cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if cmd.Flags().Changed("errors") {
			config.Report.Errors = showErrors
		}

		engine, err := lex.New(nil, config, logger)
		if err != nil {
			logger.Fatal("Failed to initialize scan engine", zap.Error(err))
		}

		opts := outputOptions{
			json:       scanJsonOutput,
			outPath:    outPath,
			withErrors: config.Report.Errors,
		}
		if err := runScan(ctx, logger, engine, args, config.Extensions, opts); err != nil {
			logger.Error("Error scanning files", zap.Error(err))
			os.Exit(1)
		}
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanJsonOutput, "json", false, "Output results in JSON format")
	scanCmd.Flags().StringVarP(&outPath, "output", "o", "", "Write the report to a file instead of stdout")
	scanCmd.Flags().BoolVar(&showErrors, "errors", true, "Include skipped characters in the text report")
}

type outputOptions struct {
	json       bool
	outPath    string
	withErrors bool
}

func runScan(
	ctx context.Context,
	logger *zap.Logger,
	engine lex.LexEngine,
	paths []string,
	extensions []string,
	opts outputOptions,
) error {
	results, err := lex.ProcessFiles(ctx, logger, engine, paths, extensions, lex.ProcessFile)
	if err != nil {
		return err
	}

	printDiagnostics(os.Stderr, logger, engine.Fs(), results)

	if opts.outPath == "" {
		return printResults(os.Stdout, results, opts)
	}

	f, err := os.Create(opts.outPath)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()
	return printResults(f, results, opts)
}

func printResults(w io.Writer, results []*tt.Result, opts outputOptions) error {
	if opts.json {
		return internal.WriteJSON(w, results)
	}

	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", res.Filename)
		}
		if err := internal.WriteReport(w, res, opts.withErrors); err != nil {
			return err
		}
	}
	return nil
}

// printDiagnostics renders skipped characters against their source lines.
func printDiagnostics(w io.Writer, logger *zap.Logger, fs afero.Fs, results []*tt.Result) {
	for _, res := range results {
		if len(res.Diagnostics) == 0 {
			continue
		}
		sourceCode, err := internal.ReadSourceCode(fs, res.Filename)
		if err != nil {
			logger.Error("Error reading source file", zap.String("file", res.Filename), zap.Error(err))
			sourceCode = &internal.SourceCode{}
		}
		fmt.Fprint(w, internal.FormatDiagnostics(res.Diagnostics, sourceCode))
	}
}

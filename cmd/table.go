package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/dfalex/internal/dfa"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the transition table",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printTable(os.Stdout, dfa.Default()); err != nil {
			logger.Error("Error printing transition table", zap.Error(err))
			os.Exit(1)
		}
	},
}

func printTable(w io.Writer, table *dfa.Table) error {
	title := color.New(color.FgHiWhite, color.Bold)
	_, _ = title.Fprintf(w, "%d states, %d columns\n", table.NumStates(), dfa.NumColumns)
	fmt.Fprintln(w)
	return table.Format(w)
}

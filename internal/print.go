package internal

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	tt "github.com/gnolang/dfalex/internal/types"
)

const (
	tabWidth = 8
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
)

// FormatDiagnostics renders skipped characters against their source line,
// with a caret under the offending column.
func FormatDiagnostics(diags []tt.Diagnostic, sourceCode *SourceCode) string {
	var builder strings.Builder
	for _, d := range diags {
		builder.WriteString(formatDiagnosticHeader(d))
		builder.WriteString(formatDiagnostic(d, sourceCode))
	}
	return builder.String()
}

func formatDiagnosticHeader(d tt.Diagnostic) string {
	return errorStyle.Sprint("warning: ") + ruleStyle.Sprint(d.Kind) + "\n" +
		lineStyle.Sprint(" --> ") + fileStyle.Sprint(d.Pos) + "\n"
}

func formatDiagnostic(d tt.Diagnostic, sourceCode *SourceCode) string {
	var result strings.Builder

	lineNumberStr := fmt.Sprintf("%d", d.Pos.Line)
	padding := strings.Repeat(" ", len(lineNumberStr)-1)
	result.WriteString(lineStyle.Sprintf("  %s|\n", padding))

	// the file may have changed since it was scanned
	if sourceCode == nil || d.Pos.Line < 1 || d.Pos.Line > len(sourceCode.Lines) {
		result.WriteString(lineStyle.Sprintf("  %s= ", padding))
		result.WriteString(messageStyle.Sprintf("%s\n\n", d.Message()))
		return result.String()
	}

	raw := sourceCode.Lines[d.Pos.Line-1]
	line := expandTabs(raw)
	result.WriteString(lineStyle.Sprintf("%d | ", d.Pos.Line))
	result.WriteString(line + "\n")

	visualColumn := calculateVisualColumn(raw, d.Pos.Column)
	result.WriteString(lineStyle.Sprintf("  %s| ", padding))
	result.WriteString(strings.Repeat(" ", visualColumn))
	result.WriteString(messageStyle.Sprintf("^ %s\n\n", d.Message()))

	return result.String()
}

func expandTabs(line string) string {
	var expanded strings.Builder
	column := 0
	for _, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (column % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaceCount))
			column += spaceCount
		} else {
			expanded.WriteRune(ch)
			column++
		}
	}
	return expanded.String()
}

// calculateVisualColumn converts a 1-based character column into the number
// of cells before it once tabs are expanded.
func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	chars := 0
	for _, ch := range line {
		if chars+1 >= column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
		chars++
	}
	if column-1 > chars {
		visualColumn += column - 1 - chars
	}
	return visualColumn
}

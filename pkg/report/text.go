package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type colorFunc func(a ...interface{}) string

// TextRenderer writes a Report as plain text, one section per check with
// findings. It never mutates the Report.
type TextRenderer struct {
	stdout io.Writer
	cyan   colorFunc
	yellow colorFunc
	red    colorFunc
}

func NewTextRenderer(stdout io.Writer) *TextRenderer {
	return &TextRenderer{
		stdout: stdout,
		cyan:   color.New(color.FgCyan).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		red:    color.New(color.FgRed).SprintFunc(),
	}
}

func (r *TextRenderer) Render(rep *Report) {
	results := rep.Results()
	failures := rep.Failures()
	if len(results) == 0 && len(failures) == 0 {
		fmt.Fprintln(r.stdout, "No findings.")
		return
	}
	for _, result := range results {
		fmt.Fprintf(r.stdout, "Check: %s\n", r.cyan(result.Name))
		if result.Description != "" {
			fmt.Fprintln(r.stdout, result.Description)
		}
		if result.Warning != "" {
			fmt.Fprintln(r.stdout, r.yellow(result.Warning))
		}
		fmt.Fprintln(r.stdout, "Result:")
		for _, row := range result.Rows {
			fmt.Fprintf(r.stdout, "  - (%s)\n", formatRow(row))
		}
		fmt.Fprintln(r.stdout)
	}
	for _, failure := range failures {
		fmt.Fprintf(r.stdout, "%s Check %s failed: %v\n", r.red("ERROR"), failure.Name, failure.Err)
	}
}

func formatRow(row Row) string {
	values := make([]string, len(row))
	for i, v := range row {
		values[i] = fmt.Sprint(v)
	}
	return strings.Join(values, ", ")
}

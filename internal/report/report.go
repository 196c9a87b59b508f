// Package report renders runner results.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/randomizedcoder/branch-queue-benchmarks/internal/runner"
)

// Header is the column order of Table.
var Header = []string{"Case", "Iterations", "Elapsed", "ns/op", "Inputs"}

// Table writes one row per result to w.
func Table(w io.Writer, results []runner.Result) error {
	t := tablewriter.NewWriter(w).Options(tablewriter.WithRendition(tw.Rendition{
		Borders: tw.Border{
			Left:   tw.On,
			Top:    tw.Off,
			Right:  tw.On,
			Bottom: tw.Off,
		},
	}), tablewriter.WithHeader(Header))

	for _, r := range results {
		if err := t.Append(Row(r)...); err != nil {
			return fmt.Errorf("append %s: %w", r.Name, err)
		}
	}
	return t.Render()
}

// Row formats a result in Header order.
func Row(r runner.Result) []any {
	inputs := ""
	if r.Inputs != 0 {
		inputs = fmt.Sprintf("%016x", r.Inputs)
	}
	return []any{
		r.Name,
		strconv.Itoa(r.Iterations),
		r.Elapsed.String(),
		fmt.Sprintf("%0.2f", r.NsPerOp()),
		inputs,
	}
}

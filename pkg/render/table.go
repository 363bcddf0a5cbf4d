// Package render draws distributions for people: plain tables, terminal bar
// charts and HTML charts comparing a base distribution with its transform.
package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Series is a named distribution over a shared vocabulary.
type Series struct {
	Name   string
	Values []float64
}

// Table writes one row per vocabulary entry and one column per series.
func Table(w io.Writer, vocab []string, series ...Series) error {
	for _, s := range series {
		if len(s.Values) != len(vocab) {
			return fmt.Errorf("series %s has %d values for %d labels", s.Name, len(s.Values), len(vocab))
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := table.Row{"token"}
	configs := make([]table.ColumnConfig, 0, len(series))
	for i, s := range series {
		header = append(header, s.Name)
		configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignRight})
	}
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for i, label := range vocab {
		row := table.Row{label}
		for _, s := range series {
			row = append(row, fmt.Sprintf("%.4f", s.Values[i]))
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// BarChart writes a standalone HTML page with a grouped bar chart of the
// series over vocab, with the probability axis fixed to [0, 1].
func BarChart(w io.Writer, title, subtitle string, vocab []string, series ...Series) error {
	for _, s := range series {
		if len(s.Values) != len(vocab) {
			return fmt.Errorf("series %s has %d values for %d labels", s.Name, len(s.Values), len(vocab))
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "450px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Candidate tokens"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Probability", Min: 0, Max: 1}),
	)

	bar.SetXAxis(vocab)
	for _, s := range series {
		items := make([]opts.BarData, len(s.Values))
		for i, v := range s.Values {
			items[i] = opts.BarData{Name: vocab[i], Value: v}
		}
		bar.AddSeries(s.Name, items)
	}

	return bar.Render(w)
}

package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/screener"
	md "github.com/nao1215/markdown"
)

// StatisticsMarkdown renders distribution statistics over a loaded data set.
func StatisticsMarkdown(s *screener.Statistics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Instrument Statistics")

	if s == nil {
		doc.PlainText("No instruments loaded, no statistics available.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("Computed over %d instruments.", s.Instruments))

	row := func(metric string, m screener.MetricStats) []string {
		return []string{
			metric,
			fmt.Sprintf("%.2f", m.Average),
			fmt.Sprintf("%.2f", m.Median),
			fmt.Sprintf("%.2f", m.Minimum),
			fmt.Sprintf("%.2f", m.Maximum),
		}
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Metric", "Average", "Median", "Minimum", "Maximum"},
		Rows: [][]string{
			row("ROI %", s.ROI),
			row("Valuation Index", s.ValuationIndex),
			row("Risk Score", s.RiskScore),
		},
	})
	return doc.String()
}

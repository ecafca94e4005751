package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/screener"
	md "github.com/nao1215/markdown"
)

// ScreenMarkdown renders a screening report to a markdown string.
func ScreenMarkdown(r *screener.Report, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Screening Report")
	doc.PlainText(fmt.Sprintf("Criteria: valuation index >= %.2f and risk score <= %.2f", r.Criteria.MinValuationIndex, r.Criteria.MaxRiskScore))
	doc.PlainText(fmt.Sprintf("Matched %d of %d instruments.", r.MatchedCount, r.TotalCount))

	if len(r.Rows) == 0 {
		doc.PlainText("No instruments meet the given criteria.")
		return doc.String()
	}

	doc.Table(instrumentTable(r.Rows, currency))
	return doc.String()
}

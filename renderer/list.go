package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/screener"
	md "github.com/nao1215/markdown"
)

// InstrumentsMarkdown renders every loaded instrument without applying any
// screening criteria. Callers rank the slice beforehand.
func InstrumentsMarkdown(instruments []screener.Instrument, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Instruments")

	if len(instruments) == 0 {
		doc.PlainText("No instruments loaded.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("%d instruments, ranked by valuation index.", len(instruments)))

	doc.Table(instrumentTable(instruments, currency))
	return doc.String()
}

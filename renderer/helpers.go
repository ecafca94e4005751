// Package renderer formats screening results as markdown reports.
//
// Every report is built with the markdown builder and returned as a plain
// string, so callers decide whether to print it raw or through a terminal
// renderer.
package renderer

import (
	"fmt"

	"github.com/etnz/screener"
	md "github.com/nao1215/markdown"
)

// instrumentTable builds the instrument table shared by the screening and
// listing reports. Prices are formatted in the given display currency.
func instrumentTable(instruments []screener.Instrument, currency string) md.TableSet {
	rows := make([][]string, 0, len(instruments))
	for _, i := range instruments {
		rows = append(rows, []string{
			i.Symbol,
			i.Name,
			i.Sector,
			screener.M(i.Price, currency).String(),
			fmt.Sprintf("%.2f", i.RiskScore),
			i.ROI.String(),
			fmt.Sprintf("%.2f", i.ValuationIndex),
		})
	}
	return md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Name", "Sector", "Price", "Risk", "ROI", "Index"},
		Rows:   rows,
	}
}

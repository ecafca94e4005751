package screener

import "sort"

// Criteria are the inclusive thresholds an instrument must meet to pass the
// screen.
type Criteria struct {
	MinValuationIndex float64 `json:"min_valuation_index"`
	MaxRiskScore      float64 `json:"max_risk_score"`
}

// DefaultCriteria returns the standard thresholds: a valuation index of at
// least 10.0 and a risk score of at most 5.0.
func DefaultCriteria() Criteria {
	return Criteria{MinValuationIndex: 10.0, MaxRiskScore: 5.0}
}

// Match reports whether i passes the screen. Both bounds are inclusive.
func (c Criteria) Match(i Instrument) bool {
	return i.ValuationIndex >= c.MinValuationIndex && i.RiskScore <= c.MaxRiskScore
}

// Rank returns a copy of instruments sorted by valuation index, highest
// first. The sort is stable: instruments with equal valuation indexes keep
// their load order.
func Rank(instruments []Instrument) []Instrument {
	ranked := make([]Instrument, len(instruments))
	copy(ranked, instruments)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].ValuationIndex > ranked[b].ValuationIndex
	})
	return ranked
}

// Screen filters instruments against c and ranks the survivors by valuation
// index, highest first. The input slice is left untouched, so the caller
// keeps the full collection for reporting. An empty result is valid.
func Screen(instruments []Instrument, c Criteria) []Instrument {
	matched := make([]Instrument, 0, len(instruments))
	for _, i := range instruments {
		if c.Match(i) {
			matched = append(matched, i)
		}
	}
	return Rank(matched)
}

// Report summarizes one screening run for the rendering layer.
type Report struct {
	TotalCount   int          `json:"total_count"`
	MatchedCount int          `json:"matched_count"`
	Criteria     Criteria     `json:"criteria"`
	Rows         []Instrument `json:"rows"`
}

// NewReport screens instruments against c and returns the run summary: the
// size of the full collection, the number of matches, the criteria applied
// and the matching rows in ranked order.
func NewReport(instruments []Instrument, c Criteria) *Report {
	rows := Screen(instruments, c)
	return &Report{
		TotalCount:   len(instruments),
		MatchedCount: len(rows),
		Criteria:     c,
		Rows:         rows,
	}
}

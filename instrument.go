package screener

// Instrument is one analyzed record: the identity and input figures read from
// the source file, plus the metrics derived from them.
//
// An Instrument is constructed once per valid input row, annotated immediately,
// and never mutated after it enters a ranked collection.
type Instrument struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Sector string `json:"sector"`

	Price            float64 `json:"price"`
	Earnings         float64 `json:"earnings"`
	Dividend         float64 `json:"dividend"`
	GrowthPercentage Percent `json:"growth_percentage"`
	RiskScore        float64 `json:"risk_score"`

	// Derived fields, set by Annotate.
	EPS            float64 `json:"eps"`
	ROI            Percent `json:"roi"`
	ValuationIndex float64 `json:"valuation_index"`
}

// Annotate computes the derived metrics from the input figures:
//
//	eps             = earnings
//	roi             = ((eps + dividend) / price) * 100
//	valuation_index = (roi * growth_percentage) / risk_score
//
// eps is a direct pass-through of earnings: this domain's simplified model has
// no share count. A risk score of zero or less forces the valuation index to
// exactly 0.0 instead of failing.
//
// Annotate requires Price > 0, which the loader guarantees for every accepted
// row. It is a pure function of the instrument's own input fields, so the
// order in which a collection is annotated does not matter.
func (i *Instrument) Annotate() {
	i.EPS = i.Earnings
	roi := ((i.EPS + i.Dividend) / i.Price) * 100
	i.ROI = Percent(roi)
	if i.RiskScore > 0 {
		i.ValuationIndex = (roi * float64(i.GrowthPercentage)) / i.RiskScore
	} else {
		i.ValuationIndex = 0.0
	}
}

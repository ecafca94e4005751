package screener

// testInstrument builds an annotated instrument from raw figures, defaulting
// identity fields the way the loader would.
func testInstrument(symbol string, price, earnings, dividend, growth, risk float64) Instrument {
	i := Instrument{
		Symbol:           symbol,
		Name:             symbol,
		Sector:           DefaultSector,
		Price:            price,
		Earnings:         earnings,
		Dividend:         dividend,
		GrowthPercentage: Percent(growth),
		RiskScore:        risk,
	}
	i.Annotate()
	return i
}

// almostEqual compares floats with the tolerance used throughout these tests.
func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}

func symbols(instruments []Instrument) []string {
	s := make([]string, len(instruments))
	for n, i := range instruments {
		s[n] = i.Symbol
	}
	return s
}

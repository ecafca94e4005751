package screener

import "testing"

func TestNewStatistics(t *testing.T) {
	// Chosen so every metric is exact in binary: rois 25, 50, 100.
	instruments := []Instrument{
		testInstrument("A", 4, 1, 0, 2, 5), // roi 25, valuation 10, risk 5
		testInstrument("B", 2, 1, 0, 4, 2), // roi 50, valuation 100, risk 2
		testInstrument("C", 1, 1, 0, 0, 1), // roi 100, valuation 0, risk 1
	}

	stats := NewStatistics(instruments)
	if stats == nil {
		t.Fatal("NewStatistics() = nil, want aggregates")
	}
	if stats.Instruments != 3 {
		t.Errorf("Instruments = %d, want 3", stats.Instruments)
	}

	tests := []struct {
		name string
		got  MetricStats
		want MetricStats
	}{
		{"roi", stats.ROI, MetricStats{Average: 175.0 / 3, Median: 50, Minimum: 25, Maximum: 100}},
		{"valuation index", stats.ValuationIndex, MetricStats{Average: 110.0 / 3, Median: 10, Minimum: 0, Maximum: 100}},
		{"risk score", stats.RiskScore, MetricStats{Average: 8.0 / 3, Median: 2, Minimum: 1, Maximum: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !almostEqual(tt.got.Average, tt.want.Average) {
				t.Errorf("Average = %v, want %v", tt.got.Average, tt.want.Average)
			}
			if tt.got.Median != tt.want.Median {
				t.Errorf("Median = %v, want %v", tt.got.Median, tt.want.Median)
			}
			if tt.got.Minimum != tt.want.Minimum {
				t.Errorf("Minimum = %v, want %v", tt.got.Minimum, tt.want.Minimum)
			}
			if tt.got.Maximum != tt.want.Maximum {
				t.Errorf("Maximum = %v, want %v", tt.got.Maximum, tt.want.Maximum)
			}
		})
	}
}

func TestNewStatisticsEvenMedian(t *testing.T) {
	instruments := []Instrument{
		testInstrument("A", 4, 1, 0, 2, 1), // roi 25
		testInstrument("B", 2, 1, 0, 2, 3), // roi 50
		testInstrument("C", 1, 1, 0, 2, 5), // roi 100
		testInstrument("D", 1, 2, 0, 2, 7), // roi 200
	}

	stats := NewStatistics(instruments)
	if got := stats.ROI.Median; got != 75 {
		t.Errorf("Median = %v, want 75 (midpoint of 50 and 100)", got)
	}
	if got := stats.RiskScore.Median; got != 4 {
		t.Errorf("risk Median = %v, want 4", got)
	}
}

func TestNewStatisticsEmpty(t *testing.T) {
	if got := NewStatistics(nil); got != nil {
		t.Errorf("NewStatistics(nil) = %+v, want nil", got)
	}
}

package screener

import "sort"

// MetricStats aggregates one metric over the loaded collection.
type MetricStats struct {
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
}

// Statistics holds collection-wide aggregates of the three derived or scored
// metrics, computed over all loaded instruments regardless of any screen.
type Statistics struct {
	Instruments    int         `json:"instruments"`
	ROI            MetricStats `json:"roi"`
	ValuationIndex MetricStats `json:"valuation_index"`
	RiskScore      MetricStats `json:"risk_score"`
}

// NewStatistics aggregates the full collection. It returns nil when the
// collection is empty: there is nothing to aggregate.
func NewStatistics(instruments []Instrument) *Statistics {
	if len(instruments) == 0 {
		return nil
	}

	rois := make([]float64, len(instruments))
	valuations := make([]float64, len(instruments))
	risks := make([]float64, len(instruments))
	for n, i := range instruments {
		rois[n] = float64(i.ROI)
		valuations[n] = i.ValuationIndex
		risks[n] = i.RiskScore
	}

	return &Statistics{
		Instruments:    len(instruments),
		ROI:            newMetricStats(rois),
		ValuationIndex: newMetricStats(valuations),
		RiskScore:      newMetricStats(risks),
	}
}

func newMetricStats(values []float64) MetricStats {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}

	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return MetricStats{
		Average: sum / float64(n),
		Median:  median,
		Minimum: sorted[0],
		Maximum: sorted[n-1],
	}
}

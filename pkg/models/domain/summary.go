package domain

// GroupMean is one row of an ordered group→mean mapping. Groups with no
// records are never emitted.
type GroupMean struct {
	Group string
	Mean  float64
	Count int
}

// MetricSummary holds the overall statistics for one metric over a filtered
// view. HasData is false when the view is empty; Mean/Min/Max are only
// meaningful when it is true.
type MetricSummary struct {
	Metric  Metric
	Mean    float64
	Min     float64
	Max     float64
	Count   int
	HasData bool
}

// GroupBreakdown holds the per-metric means for a single group value,
// e.g. one country or one industry. A metric missing from Means had no
// records in the group.
type GroupBreakdown struct {
	Group string
	Count int
	Means map[Metric]float64
}

// CorrelationMatrix is the pairwise Pearson correlation among metrics over
// a filtered view. A cell is undefined when either metric has zero variance
// or the view holds fewer than two records; Defined masks such cells.
type CorrelationMatrix struct {
	Metrics []Metric
	Values  [][]float64
	Defined [][]bool
}

// At returns the correlation between metrics i and j, and whether it is
// defined.
func (m CorrelationMatrix) At(i, j int) (float64, bool) {
	if i < 0 || j < 0 || i >= len(m.Metrics) || j >= len(m.Metrics) {
		return 0, false
	}
	if !m.Defined[i][j] {
		return 0, false
	}
	return m.Values[i][j], true
}

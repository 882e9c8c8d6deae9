package api

// YearRange is an inclusive year window.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterCriteria is the request body shared by all dashboard endpoints.
// Set-valued fields are explicit selections: an empty list selects nothing.
type FilterCriteria struct {
	Years              YearRange `json:"years"`
	Countries          []string  `json:"countries"`
	Industries         []string  `json:"industries"`
	Tools              []string  `json:"tools"`
	RegulationStatuses []string  `json:"regulation_statuses"`
}

// FilterOptions describes the selectable filter values observed in the
// dataset, plus the default criteria a fresh session starts from.
type FilterOptions struct {
	Years              YearRange      `json:"years"`
	Countries          []string       `json:"countries"`
	Industries         []string       `json:"industries"`
	Tools              []string       `json:"tools"`
	RegulationStatuses []string       `json:"regulation_statuses"`
	Defaults           FilterCriteria `json:"defaults"`
}

// Record is one filtered row for the raw table display.
type Record struct {
	Year              int     `json:"year"`
	Country           string  `json:"country"`
	Industry          string  `json:"industry"`
	TopAITool         string  `json:"top_ai_tool"`
	RegulationStatus  string  `json:"regulation_status"`
	AdoptionRate      float64 `json:"ai_adoption_rate"`
	JobLossRate       float64 `json:"job_loss_rate"`
	RevenueIncrease   float64 `json:"revenue_increase_rate"`
	CollaborationRate float64 `json:"human_ai_collaboration_rate"`
}

// MetricSummary is one KPI card. Mean/Min/Max are null when the filtered
// view holds no records.
type MetricSummary struct {
	Metric string   `json:"metric"`
	Mean   *float64 `json:"mean"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	Count  int      `json:"count"`
}

// TrendPoint is one (group, mean) point of a grouped series.
type TrendPoint struct {
	Group string  `json:"group"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// TrendSeries is the mean-by-year series for one metric.
type TrendSeries struct {
	Metric string       `json:"metric"`
	Points []TrendPoint `json:"points"`
}

// GroupBreakdown holds per-metric means for one group value. Metrics with
// no records in the group are null.
type GroupBreakdown struct {
	Group string              `json:"group"`
	Count int                 `json:"count"`
	Means map[string]*float64 `json:"means"`
}

// RadarSeries is one closed polygon of the industry radar chart: the first
// value is repeated at the end to close the loop.
type RadarSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// RadarChart carries the closed theta axis (first category repeated last)
// and one series per group.
type RadarChart struct {
	Theta  []string      `json:"theta"`
	Series []RadarSeries `json:"series"`
}

// GeoPoint is one per-record point of the geographic scatter.
type GeoPoint struct {
	Country         string  `json:"country"`
	Year            int     `json:"year"`
	Industry        string  `json:"industry"`
	AdoptionRate    float64 `json:"ai_adoption_rate"`
	RevenueIncrease float64 `json:"revenue_increase_rate"`
}

// CorrelationMatrix is the pairwise Pearson correlation heatmap. Undefined
// cells (zero variance or fewer than two records) are null.
type CorrelationMatrix struct {
	Metrics []string     `json:"metrics"`
	Cells   [][]*float64 `json:"cells"`
}

// Error is the uniform error body returned by the API.
type Error struct {
	Message string `json:"message"`
}

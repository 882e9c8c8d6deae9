package domain

import "strconv"

// Metric identifies one of the four numeric percentage columns of the dataset.
type Metric string

const (
	MetricAdoptionRate      Metric = "ai_adoption_rate"
	MetricJobLossRate       Metric = "job_loss_rate"
	MetricRevenueIncrease   Metric = "revenue_increase_rate"
	MetricCollaborationRate Metric = "human_ai_collaboration_rate"
)

// Metrics returns all metrics in their canonical display order.
func Metrics() []Metric {
	return []Metric{
		MetricAdoptionRate,
		MetricJobLossRate,
		MetricRevenueIncrease,
		MetricCollaborationRate,
	}
}

// GroupKey identifies a categorical dimension records can be grouped by.
type GroupKey string

const (
	GroupByYear     GroupKey = "year"
	GroupByCountry  GroupKey = "country"
	GroupByIndustry GroupKey = "industry"
	GroupByTool     GroupKey = "tool"
)

// Record is a single country/industry/year observation.
type Record struct {
	Year             int
	Country          string
	Industry         string
	TopAITool        string
	RegulationStatus string

	AdoptionRate      float64
	JobLossRate       float64
	RevenueIncrease   float64
	CollaborationRate float64
}

// MetricValue returns the value of the given metric for this record.
func (r Record) MetricValue(m Metric) float64 {
	switch m {
	case MetricAdoptionRate:
		return r.AdoptionRate
	case MetricJobLossRate:
		return r.JobLossRate
	case MetricRevenueIncrease:
		return r.RevenueIncrease
	case MetricCollaborationRate:
		return r.CollaborationRate
	}
	return 0
}

// GroupValue returns the record's value for the given grouping dimension
// as a display string. Years are formatted in decimal.
func (r Record) GroupValue(key GroupKey) string {
	switch key {
	case GroupByYear:
		return strconv.Itoa(r.Year)
	case GroupByCountry:
		return r.Country
	case GroupByIndustry:
		return r.Industry
	case GroupByTool:
		return r.TopAITool
	}
	return ""
}

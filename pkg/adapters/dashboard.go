package adapters

import (
	"github.com/de-tools/impact-atlas/pkg/models/api"
	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/de-tools/impact-atlas/pkg/models/store"
)

func MapStoreRecordToDomain(r store.Record) domain.Record {
	return domain.Record{
		Year:              r.Year,
		Country:           r.Country,
		Industry:          r.Industry,
		TopAITool:         r.TopAITool,
		RegulationStatus:  r.RegulationStatus,
		AdoptionRate:      r.AdoptionRate,
		JobLossRate:       r.JobLossRate,
		RevenueIncrease:   r.RevenueIncrease,
		CollaborationRate: r.CollaborationRate,
	}
}

func MapRecordDomainToApi(r domain.Record) api.Record {
	return api.Record{
		Year:              r.Year,
		Country:           r.Country,
		Industry:          r.Industry,
		TopAITool:         r.TopAITool,
		RegulationStatus:  r.RegulationStatus,
		AdoptionRate:      r.AdoptionRate,
		JobLossRate:       r.JobLossRate,
		RevenueIncrease:   r.RevenueIncrease,
		CollaborationRate: r.CollaborationRate,
	}
}

func MapViewDomainToApi(view domain.FilteredView) []api.Record {
	records := make([]api.Record, 0, len(view))
	for _, r := range view {
		records = append(records, MapRecordDomainToApi(r))
	}
	return records
}

func MapCriteriaApiToDomain(c api.FilterCriteria) domain.FilterCriteria {
	return domain.FilterCriteria{
		Years:              domain.YearRange{Min: c.Years.Min, Max: c.Years.Max},
		Countries:          c.Countries,
		Industries:         c.Industries,
		Tools:              c.Tools,
		RegulationStatuses: c.RegulationStatuses,
	}
}

func MapCriteriaDomainToApi(c domain.FilterCriteria) api.FilterCriteria {
	return api.FilterCriteria{
		Years:              api.YearRange{Min: c.Years.Min, Max: c.Years.Max},
		Countries:          c.Countries,
		Industries:         c.Industries,
		Tools:              c.Tools,
		RegulationStatuses: c.RegulationStatuses,
	}
}

// MapSummaryDomainToApi maps a metric summary, surfacing missing data as
// null fields instead of zeroes.
func MapSummaryDomainToApi(s domain.MetricSummary) api.MetricSummary {
	summary := api.MetricSummary{
		Metric: string(s.Metric),
		Count:  s.Count,
	}
	if s.HasData {
		mean, min, max := s.Mean, s.Min, s.Max
		summary.Mean = &mean
		summary.Min = &min
		summary.Max = &max
	}
	return summary
}

func MapTrendDomainToApi(metric domain.Metric, means []domain.GroupMean) api.TrendSeries {
	series := api.TrendSeries{
		Metric: string(metric),
		Points: make([]api.TrendPoint, 0, len(means)),
	}
	for _, m := range means {
		series.Points = append(series.Points, api.TrendPoint{
			Group: m.Group,
			Mean:  m.Mean,
			Count: m.Count,
		})
	}
	return series
}

func MapBreakdownDomainToApi(b domain.GroupBreakdown, metrics []domain.Metric) api.GroupBreakdown {
	means := make(map[string]*float64, len(metrics))
	for _, m := range metrics {
		if v, ok := b.Means[m]; ok {
			value := v
			means[string(m)] = &value
		} else {
			means[string(m)] = nil
		}
	}
	return api.GroupBreakdown{
		Group: b.Group,
		Count: b.Count,
		Means: means,
	}
}

func MapCorrelationDomainToApi(matrix domain.CorrelationMatrix) api.CorrelationMatrix {
	out := api.CorrelationMatrix{
		Metrics: make([]string, 0, len(matrix.Metrics)),
		Cells:   make([][]*float64, len(matrix.Metrics)),
	}
	for _, m := range matrix.Metrics {
		out.Metrics = append(out.Metrics, string(m))
	}
	for i := range matrix.Metrics {
		out.Cells[i] = make([]*float64, len(matrix.Metrics))
		for j := range matrix.Metrics {
			if v, ok := matrix.At(i, j); ok {
				value := v
				out.Cells[i][j] = &value
			}
		}
	}
	return out
}

func MapGeoPointsDomainToApi(view domain.FilteredView) []api.GeoPoint {
	points := make([]api.GeoPoint, 0, len(view))
	for _, r := range view {
		points = append(points, api.GeoPoint{
			Country:         r.Country,
			Year:            r.Year,
			Industry:        r.Industry,
			AdoptionRate:    r.AdoptionRate,
			RevenueIncrease: r.RevenueIncrease,
		})
	}
	return points
}

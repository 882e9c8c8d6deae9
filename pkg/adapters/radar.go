package adapters

import (
	"github.com/de-tools/impact-atlas/pkg/models/api"
	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

// BuildRadarChart shapes per-group metric means into closed radar polygons.
// Polar charts need the loop closed explicitly: the first metric's value is
// appended again at the end of each series, and the theta axis repeats the
// first metric label. Groups where any metric has no records are skipped,
// since an open polygon cannot be drawn.
func BuildRadarChart(breakdowns []domain.GroupBreakdown, metrics []domain.Metric) api.RadarChart {
	chart := api.RadarChart{
		Theta:  make([]string, 0, len(metrics)+1),
		Series: make([]api.RadarSeries, 0, len(breakdowns)),
	}

	if len(metrics) == 0 {
		return chart
	}

	for _, m := range metrics {
		chart.Theta = append(chart.Theta, string(m))
	}
	chart.Theta = append(chart.Theta, string(metrics[0]))

	for _, b := range breakdowns {
		values := make([]float64, 0, len(metrics)+1)
		complete := true
		for _, m := range metrics {
			v, ok := b.Means[m]
			if !ok {
				complete = false
				break
			}
			values = append(values, v)
		}
		if !complete {
			continue
		}
		values = append(values, values[0])
		chart.Series = append(chart.Series, api.RadarSeries{
			Name:   b.Group,
			Values: values,
		})
	}

	return chart
}

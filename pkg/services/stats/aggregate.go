package stats

import (
	"sort"
	"strconv"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

// MeanByGroup computes the per-group mean of one metric over the view.
// Groups are ordered ascending: numerically for the year dimension,
// lexicographically otherwise. Groups with no records emit no row, so an
// empty view yields an empty mapping.
func MeanByGroup(view domain.FilteredView, key domain.GroupKey, metric domain.Metric) []domain.GroupMean {
	sums := map[string]float64{}
	counts := map[string]int{}

	for _, r := range view {
		group := r.GroupValue(key)
		sums[group] += r.MetricValue(metric)
		counts[group]++
	}

	groups := make([]string, 0, len(sums))
	for g := range sums {
		groups = append(groups, g)
	}
	sortGroups(groups, key)

	means := make([]domain.GroupMean, 0, len(groups))
	for _, g := range groups {
		means = append(means, domain.GroupMean{
			Group: g,
			Mean:  sums[g] / float64(counts[g]),
			Count: counts[g],
		})
	}

	return means
}

// OverallMean computes the mean of one metric over the whole view. The
// second return value is false when the view is empty; no numeric default
// stands in for a missing mean.
func OverallMean(view domain.FilteredView, metric domain.Metric) (float64, bool) {
	if len(view) == 0 {
		return 0, false
	}

	sum := 0.0
	for _, r := range view {
		sum += r.MetricValue(metric)
	}
	return sum / float64(len(view)), true
}

// Summarize computes mean, min and max of one metric over the view.
// HasData is false when the view is empty.
func Summarize(view domain.FilteredView, metric domain.Metric) domain.MetricSummary {
	summary := domain.MetricSummary{Metric: metric, Count: len(view)}
	if len(view) == 0 {
		return summary
	}

	sum := 0.0
	min := view[0].MetricValue(metric)
	max := min
	for _, r := range view {
		v := r.MetricValue(metric)
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	summary.Mean = sum / float64(len(view))
	summary.Min = min
	summary.Max = max
	summary.HasData = true
	return summary
}

// GroupBreakdowns computes, for every group value, the mean of each given
// metric. Group ordering follows MeanByGroup.
func GroupBreakdowns(view domain.FilteredView, key domain.GroupKey, metrics []domain.Metric) []domain.GroupBreakdown {
	sums := map[string]map[domain.Metric]float64{}
	counts := map[string]int{}

	for _, r := range view {
		group := r.GroupValue(key)
		if _, ok := sums[group]; !ok {
			sums[group] = map[domain.Metric]float64{}
		}
		for _, m := range metrics {
			sums[group][m] += r.MetricValue(m)
		}
		counts[group]++
	}

	groups := make([]string, 0, len(sums))
	for g := range sums {
		groups = append(groups, g)
	}
	sortGroups(groups, key)

	breakdowns := make([]domain.GroupBreakdown, 0, len(groups))
	for _, g := range groups {
		means := make(map[domain.Metric]float64, len(metrics))
		for _, m := range metrics {
			means[m] = sums[g][m] / float64(counts[g])
		}
		breakdowns = append(breakdowns, domain.GroupBreakdown{
			Group: g,
			Count: counts[g],
			Means: means,
		})
	}

	return breakdowns
}

func sortGroups(groups []string, key domain.GroupKey) {
	if key == domain.GroupByYear {
		sort.Slice(groups, func(i, j int) bool {
			a, _ := strconv.Atoi(groups[i])
			b, _ := strconv.Atoi(groups[j])
			return a < b
		})
		return
	}
	sort.Strings(groups)
}

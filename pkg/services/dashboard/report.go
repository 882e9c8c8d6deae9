package dashboard

import (
	"context"
	"fmt"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

const noData = "no data"

// BuildReport assembles the terminal report for one criteria: KPI summary,
// per-dimension mean breakdowns and the metric correlations. Missing data
// renders as an explicit "no data" detail, never as a zero.
func BuildReport(ctx context.Context, explorer Explorer, criteria domain.FilterCriteria) *domain.Report {
	view := explorer.Records(ctx, criteria)

	report := &domain.Report{
		Title:       "AI Adoption & Impact Summary",
		Years:       criteria.Years,
		RecordCount: view.Len(),
	}

	report.Sections = append(report.Sections, summarySection(explorer.Summaries(ctx, criteria)))

	for _, dim := range []struct {
		title string
		key   domain.GroupKey
	}{
		{"Means by Country", domain.GroupByCountry},
		{"Means by Industry", domain.GroupByIndustry},
		{"Means by Top AI Tool", domain.GroupByTool},
	} {
		breakdowns, err := explorer.Breakdown(ctx, criteria, dim.key)
		if err != nil {
			continue
		}
		report.Sections = append(report.Sections, breakdownSection(dim.title, breakdowns))
	}

	report.Sections = append(report.Sections, correlationSection(explorer.Correlation(ctx, criteria)))

	return report
}

func summarySection(summaries []domain.MetricSummary) domain.ReportSection {
	section := domain.ReportSection{
		Title:   "Overview",
		Summary: map[string]interface{}{},
	}

	for _, s := range summaries {
		if !s.HasData {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:  string(s.Metric),
				Value: noData,
			})
			continue
		}
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        string(s.Metric),
			Value:       fmt.Sprintf("%.2f", s.Mean),
			Unit:        "%",
			Description: fmt.Sprintf("min %.2f, max %.2f over %d records", s.Min, s.Max, s.Count),
		})
	}

	return section
}

func breakdownSection(title string, breakdowns []domain.GroupBreakdown) domain.ReportSection {
	section := domain.ReportSection{
		Title:   title,
		Summary: map[string]interface{}{"groups": len(breakdowns)},
	}

	for _, b := range breakdowns {
		for _, m := range domain.Metrics() {
			mean, ok := b.Means[m]
			value := noData
			if ok {
				value = fmt.Sprintf("%.2f", mean)
			}
			section.Details = append(section.Details, domain.ReportDetail{
				Name:  fmt.Sprintf("%s / %s", b.Group, m),
				Value: value,
				Unit:  "%",
			})
		}
	}

	return section
}

func correlationSection(matrix domain.CorrelationMatrix) domain.ReportSection {
	section := domain.ReportSection{
		Title:   "Metric Correlations",
		Summary: map[string]interface{}{},
	}

	for i := range matrix.Metrics {
		for j := i + 1; j < len(matrix.Metrics); j++ {
			name := fmt.Sprintf("%s ~ %s", matrix.Metrics[i], matrix.Metrics[j])
			if r, ok := matrix.At(i, j); ok {
				section.Details = append(section.Details, domain.ReportDetail{
					Name:  name,
					Value: fmt.Sprintf("%.3f", r),
				})
			} else {
				section.Details = append(section.Details, domain.ReportDetail{
					Name:  name,
					Value: noData,
				})
			}
		}
	}

	return section
}

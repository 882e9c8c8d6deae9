package dashboard

import (
	"context"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/de-tools/impact-atlas/pkg/services/filter"
	"github.com/de-tools/impact-atlas/pkg/services/stats"
	"github.com/rs/zerolog"
)

// Explorer exposes the derived views the dashboard renders. Every call runs
// one full synchronous recomputation pass over the immutable dataset;
// nothing derived is cached or shared between interactions.
type Explorer interface {
	Options(ctx context.Context) domain.FilterOptions
	Records(ctx context.Context, criteria domain.FilterCriteria) domain.FilteredView
	Summaries(ctx context.Context, criteria domain.FilterCriteria) []domain.MetricSummary
	Trends(ctx context.Context, criteria domain.FilterCriteria) map[domain.Metric][]domain.GroupMean
	Breakdown(ctx context.Context, criteria domain.FilterCriteria, key domain.GroupKey) ([]domain.GroupBreakdown, error)
	Correlation(ctx context.Context, criteria domain.FilterCriteria) domain.CorrelationMatrix
}

// Settings controls the width of the default filter selection. A zero limit
// selects every value of that dimension.
type Settings struct {
	DefaultCountries  int
	DefaultIndustries int
}

// DefaultSettings matches the dashboard's initial selection: the first five
// countries and first three industries, everything else unrestricted.
func DefaultSettings() Settings {
	return Settings{
		DefaultCountries:  5,
		DefaultIndustries: 3,
	}
}

type explorer struct {
	ds       *domain.Dataset
	settings Settings
}

func NewExplorer(ds *domain.Dataset, settings Settings) Explorer {
	return &explorer{ds: ds, settings: settings}
}

func (e *explorer) Options(_ context.Context) domain.FilterOptions {
	yearMin, yearMax := e.ds.YearBounds()
	return domain.FilterOptions{
		Years:              domain.YearRange{Min: yearMin, Max: yearMax},
		Countries:          e.ds.Countries(),
		Industries:         e.ds.Industries(),
		Tools:              e.ds.Tools(),
		RegulationStatuses: e.ds.RegulationStatuses(),
		Defaults:           filter.DefaultCriteria(e.ds, e.settings.DefaultCountries, e.settings.DefaultIndustries),
	}
}

func (e *explorer) Records(ctx context.Context, criteria domain.FilterCriteria) domain.FilteredView {
	view := filter.Apply(e.ds, criteria)

	zerolog.Ctx(ctx).Debug().
		Int("dataset_records", e.ds.Len()).
		Int("filtered_records", view.Len()).
		Msg("filter pass")

	return view
}

func (e *explorer) Summaries(ctx context.Context, criteria domain.FilterCriteria) []domain.MetricSummary {
	view := e.Records(ctx, criteria)

	summaries := make([]domain.MetricSummary, 0, len(domain.Metrics()))
	for _, m := range domain.Metrics() {
		summaries = append(summaries, stats.Summarize(view, m))
	}
	return summaries
}

func (e *explorer) Trends(ctx context.Context, criteria domain.FilterCriteria) map[domain.Metric][]domain.GroupMean {
	view := e.Records(ctx, criteria)

	trends := make(map[domain.Metric][]domain.GroupMean, len(domain.Metrics()))
	for _, m := range domain.Metrics() {
		trends[m] = stats.MeanByGroup(view, domain.GroupByYear, m)
	}
	return trends
}

func (e *explorer) Breakdown(
	ctx context.Context,
	criteria domain.FilterCriteria,
	key domain.GroupKey,
) ([]domain.GroupBreakdown, error) {
	switch key {
	case domain.GroupByYear, domain.GroupByCountry, domain.GroupByIndustry, domain.GroupByTool:
	default:
		return nil, &domain.InvalidCriteriaError{Field: "group", Reason: "unknown grouping key " + string(key)}
	}

	view := e.Records(ctx, criteria)
	return stats.GroupBreakdowns(view, key, domain.Metrics()), nil
}

func (e *explorer) Correlation(ctx context.Context, criteria domain.FilterCriteria) domain.CorrelationMatrix {
	view := e.Records(ctx, criteria)
	return stats.Correlation(view, domain.Metrics())
}

package filter

import (
	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

// Apply evaluates the criteria against every dataset record and returns the
// matching subsequence in dataset order. It is a pure function: the same
// dataset and criteria always produce the same view.
//
// Degenerate criteria are handled without error: any empty set field or a
// year range with Min > Max yields an empty view, and selected values absent
// from the dataset simply never match.
func Apply(ds *domain.Dataset, criteria domain.FilterCriteria) domain.FilteredView {
	view := domain.FilteredView{}

	if criteria.Years.Min > criteria.Years.Max {
		return view
	}

	countries := toSet(criteria.Countries)
	industries := toSet(criteria.Industries)
	tools := toSet(criteria.Tools)
	statuses := toSet(criteria.RegulationStatuses)

	if len(countries) == 0 || len(industries) == 0 || len(tools) == 0 || len(statuses) == 0 {
		return view
	}

	for _, r := range ds.Records() {
		if !criteria.Years.Contains(r.Year) {
			continue
		}
		if _, ok := countries[r.Country]; !ok {
			continue
		}
		if _, ok := industries[r.Industry]; !ok {
			continue
		}
		if _, ok := tools[r.TopAITool]; !ok {
			continue
		}
		if _, ok := statuses[r.RegulationStatus]; !ok {
			continue
		}
		view = append(view, r)
	}

	return view
}

// DefaultCriteria builds the criteria a fresh session starts from: the full
// observed year range, the first maxCountries countries and maxIndustries
// industries in sorted order, and every tool and regulation status. A
// non-positive limit selects all values of that dimension.
func DefaultCriteria(ds *domain.Dataset, maxCountries, maxIndustries int) domain.FilterCriteria {
	yearMin, yearMax := ds.YearBounds()

	return domain.FilterCriteria{
		Years:              domain.YearRange{Min: yearMin, Max: yearMax},
		Countries:          head(ds.Countries(), maxCountries),
		Industries:         head(ds.Industries(), maxIndustries),
		Tools:              head(ds.Tools(), 0),
		RegulationStatuses: head(ds.RegulationStatuses(), 0),
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func head(values []string, n int) []string {
	if n <= 0 || n >= len(values) {
		n = len(values)
	}
	out := make([]string, n)
	copy(out, values[:n])
	return out
}

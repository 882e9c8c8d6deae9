package domain

// YearRange is an inclusive [Min, Max] year window. A range where Min > Max
// matches nothing; it is not swapped.
type YearRange struct {
	Min int
	Max int
}

func (yr YearRange) Contains(year int) bool {
	return year >= yr.Min && year <= yr.Max
}

// FilterCriteria is the user-selected predicate narrowing the dataset.
// Every set-valued field is an explicit selection: an empty set selects
// nothing, there is no implicit "all" fallback. Values absent from the
// dataset are allowed and simply never match.
type FilterCriteria struct {
	Years              YearRange
	Countries          []string
	Industries         []string
	Tools              []string
	RegulationStatuses []string
}

// FilterOptions describes the selectable filter values observed in the
// dataset, plus the default criteria a fresh session starts from.
type FilterOptions struct {
	Years              YearRange
	Countries          []string
	Industries         []string
	Tools              []string
	RegulationStatuses []string
	Defaults           FilterCriteria
}

// FilteredView is the ordered subsequence of dataset records matching a
// FilterCriteria. It is an ephemeral derived value, recomputed from scratch
// on every filter change and never mutated in place.
type FilteredView []Record

func (v FilteredView) Len() int {
	return len(v)
}

func (v FilteredView) IsEmpty() bool {
	return len(v) == 0
}

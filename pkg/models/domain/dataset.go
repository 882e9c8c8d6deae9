package domain

import (
	"fmt"
	"sort"
)

// Dataset is the full table of records, immutable after load. It is created
// once per process and shared read-only between sessions.
type Dataset struct {
	records []Record

	yearMin, yearMax   int
	countries          []string
	industries         []string
	tools              []string
	regulationStatuses []string
}

// NewDataset builds an immutable Dataset from the loaded records.
// The dataset must be non-empty.
func NewDataset(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}

	ds := &Dataset{
		records: records,
		yearMin: records[0].Year,
		yearMax: records[0].Year,
	}

	countries := map[string]struct{}{}
	industries := map[string]struct{}{}
	tools := map[string]struct{}{}
	statuses := map[string]struct{}{}

	for _, r := range records {
		if r.Year < ds.yearMin {
			ds.yearMin = r.Year
		}
		if r.Year > ds.yearMax {
			ds.yearMax = r.Year
		}
		countries[r.Country] = struct{}{}
		industries[r.Industry] = struct{}{}
		tools[r.TopAITool] = struct{}{}
		statuses[r.RegulationStatus] = struct{}{}
	}

	ds.countries = sortedKeys(countries)
	ds.industries = sortedKeys(industries)
	ds.tools = sortedKeys(tools)
	ds.regulationStatuses = sortedKeys(statuses)

	return ds, nil
}

// Records exposes the underlying records in load order. Callers must treat
// the returned slice as read-only.
func (ds *Dataset) Records() []Record {
	return ds.records
}

func (ds *Dataset) Len() int {
	return len(ds.records)
}

// YearBounds returns the observed min and max year.
func (ds *Dataset) YearBounds() (int, int) {
	return ds.yearMin, ds.yearMax
}

// Countries returns the distinct countries, sorted.
func (ds *Dataset) Countries() []string {
	return ds.countries
}

// Industries returns the distinct industries, sorted.
func (ds *Dataset) Industries() []string {
	return ds.industries
}

// Tools returns the distinct top AI tools, sorted.
func (ds *Dataset) Tools() []string {
	return ds.tools
}

// RegulationStatuses returns the distinct regulation statuses, sorted.
func (ds *Dataset) RegulationStatuses() []string {
	return ds.regulationStatuses
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

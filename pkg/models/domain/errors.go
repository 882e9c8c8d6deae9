package domain

import "fmt"

// DataLoadError signals that the source table could not be loaded. It is
// fatal to initialization; no partial dataset is ever produced.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to load dataset from %q", e.Source)
	}
	return fmt.Sprintf("failed to load dataset from %q: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// InvalidCriteriaError signals a structural violation in a caller-supplied
// criteria value, such as an unknown grouping key or metric name. Empty
// selections and out-of-domain values are valid criteria, not errors.
type InvalidCriteriaError struct {
	Field  string
	Reason string
}

func (e *InvalidCriteriaError) Error() string {
	return fmt.Sprintf("invalid criteria: %s: %s", e.Field, e.Reason)
}

package domain

// Report represents a complete analysis report rendered by the terminal
// reporter.
type Report struct {
	Title       string
	Years       YearRange
	RecordCount int
	Sections    []ReportSection
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}

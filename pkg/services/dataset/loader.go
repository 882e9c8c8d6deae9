package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
)

// Source column headers as they appear in the input file.
const (
	ColumnYear             = "Year"
	ColumnCountry          = "Country"
	ColumnIndustry         = "Industry"
	ColumnTopAITool        = "Top AI Tools Used"
	ColumnRegulationStatus = "Regulation Status"

	ColumnAdoptionRate      = "AI Adoption Rate (%)"
	ColumnJobLossRate       = "Job Loss Due to AI (%)"
	ColumnRevenueIncrease   = "Revenue Increase Due to AI (%)"
	ColumnCollaborationRate = "Human-AI Collaboration Rate (%)"
)

func requiredColumns() []string {
	return []string{
		ColumnYear,
		ColumnCountry,
		ColumnIndustry,
		ColumnTopAITool,
		ColumnRegulationStatus,
		ColumnAdoptionRate,
		ColumnJobLossRate,
		ColumnRevenueIncrease,
		ColumnCollaborationRate,
	}
}

// LoadCSV reads the dataset from a CSV file. It is expected to run exactly
// once per process; the returned Dataset is immutable and safe to share
// across sessions. Any missing column or unparseable required value fails
// the whole load with a DataLoadError.
func LoadCSV(path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.DataLoadError{Source: path, Err: err}
	}
	defer f.Close()

	ds, err := loadCSV(f)
	if err != nil {
		return nil, &domain.DataLoadError{Source: path, Err: err}
	}
	return ds, nil
}

func loadCSV(r io.Reader) (*domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("source is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := map[string]int{}
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns() {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	var records []domain.Record
	line := 1
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", line+1, err)
		}
		line++

		rec, err := parseRecord(row, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, rec)
	}

	ds, err := domain.NewDataset(records)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

func parseRecord(row []string, index map[string]int) (domain.Record, error) {
	year, err := parseInt(row, index, ColumnYear)
	if err != nil {
		return domain.Record{}, err
	}

	adoption, err := parsePercent(row, index, ColumnAdoptionRate)
	if err != nil {
		return domain.Record{}, err
	}
	jobLoss, err := parsePercent(row, index, ColumnJobLossRate)
	if err != nil {
		return domain.Record{}, err
	}
	revenue, err := parsePercent(row, index, ColumnRevenueIncrease)
	if err != nil {
		return domain.Record{}, err
	}
	collaboration, err := parsePercent(row, index, ColumnCollaborationRate)
	if err != nil {
		return domain.Record{}, err
	}

	return domain.Record{
		Year:              year,
		Country:           cell(row, index, ColumnCountry),
		Industry:          cell(row, index, ColumnIndustry),
		TopAITool:         cell(row, index, ColumnTopAITool),
		RegulationStatus:  cell(row, index, ColumnRegulationStatus),
		AdoptionRate:      adoption,
		JobLossRate:       jobLoss,
		RevenueIncrease:   revenue,
		CollaborationRate: collaboration,
	}, nil
}

func cell(row []string, index map[string]int, col string) string {
	i := index[col]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseInt(row []string, index map[string]int, col string) (int, error) {
	v := cell(row, index, col)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("column %q: invalid integer %q", col, v)
	}
	return n, nil
}

// parsePercent parses a real value, tolerating a trailing % sign in the cell.
func parsePercent(row []string, index map[string]int, col string) (float64, error) {
	v := strings.TrimSuffix(cell(row, index, col), "%")
	v = strings.TrimSpace(v)
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: invalid number %q", col, v)
	}
	return f, nil
}

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validHeader = "Year,Country,Industry,Top AI Tools Used,Regulation Status," +
	"AI Adoption Rate (%),Job Loss Due to AI (%),Revenue Increase Due to AI (%),Human-AI Collaboration Rate (%)"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Run("loads records in file order", func(t *testing.T) {
		path := writeCSV(t, validHeader+"\n"+
			"2020,USA,Finance,GPT-4,Strict,10,5,20,50\n"+
			"2021,USA,Finance,GPT-4,Strict,20,5,30,60\n"+
			"2020,UK,Retail,Claude,Moderate,15,10,25,40\n")

		ds, err := LoadCSV(path)

		require.NoError(t, err)
		require.Equal(t, 3, ds.Len())
		assert.Equal(t, domain.Record{
			Year: 2020, Country: "USA", Industry: "Finance", TopAITool: "GPT-4", RegulationStatus: "Strict",
			AdoptionRate: 10, JobLossRate: 5, RevenueIncrease: 20, CollaborationRate: 50,
		}, ds.Records()[0])

		yearMin, yearMax := ds.YearBounds()
		assert.Equal(t, 2020, yearMin)
		assert.Equal(t, 2021, yearMax)
		assert.Equal(t, []string{"UK", "USA"}, ds.Countries())
		assert.Equal(t, []string{"Finance", "Retail"}, ds.Industries())
		assert.Equal(t, []string{"Claude", "GPT-4"}, ds.Tools())
		assert.Equal(t, []string{"Moderate", "Strict"}, ds.RegulationStatuses())
	})

	t.Run("tolerates percent signs and whitespace in metric cells", func(t *testing.T) {
		path := writeCSV(t, validHeader+"\n"+
			"2020, USA ,Finance,GPT-4,Strict, 10.5% ,5,20,50\n")

		ds, err := LoadCSV(path)

		require.NoError(t, err)
		assert.Equal(t, "USA", ds.Records()[0].Country)
		assert.Equal(t, 10.5, ds.Records()[0].AdoptionRate)
	})

	t.Run("fails on missing file", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"))

		var loadErr *domain.DataLoadError
		require.ErrorAs(t, err, &loadErr)
	})

	t.Run("fails on missing required column", func(t *testing.T) {
		path := writeCSV(t, "Year,Country,Industry\n2020,USA,Finance\n")

		_, err := LoadCSV(path)

		var loadErr *domain.DataLoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Contains(t, err.Error(), "missing required column")
	})

	t.Run("fails on unparseable year", func(t *testing.T) {
		path := writeCSV(t, validHeader+"\n"+
			"twenty-twenty,USA,Finance,GPT-4,Strict,10,5,20,50\n")

		_, err := LoadCSV(path)

		var loadErr *domain.DataLoadError
		require.ErrorAs(t, err, &loadErr)
	})

	t.Run("fails on unparseable metric", func(t *testing.T) {
		path := writeCSV(t, validHeader+"\n"+
			"2020,USA,Finance,GPT-4,Strict,high,5,20,50\n")

		_, err := LoadCSV(path)

		var loadErr *domain.DataLoadError
		require.ErrorAs(t, err, &loadErr)
	})

	t.Run("fails on empty source", func(t *testing.T) {
		path := writeCSV(t, "")

		_, err := LoadCSV(path)

		require.Error(t, err)
		assert.True(t, errors.As(err, new(*domain.DataLoadError)))
	})

	t.Run("fails on header-only source", func(t *testing.T) {
		path := writeCSV(t, validHeader+"\n")

		_, err := LoadCSV(path)

		var loadErr *domain.DataLoadError
		require.ErrorAs(t, err, &loadErr)
		assert.Contains(t, err.Error(), "empty")
	})
}

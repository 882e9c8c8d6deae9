package adapters

import (
	"testing"

	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRadarChart_ClosesThePolarLoop(t *testing.T) {
	metrics := domain.Metrics()
	breakdowns := []domain.GroupBreakdown{
		{
			Group: "Finance",
			Count: 1,
			Means: map[domain.Metric]float64{
				domain.MetricAdoptionRate:      10,
				domain.MetricJobLossRate:       20,
				domain.MetricRevenueIncrease:   30,
				domain.MetricCollaborationRate: 40,
			},
		},
	}

	chart := BuildRadarChart(breakdowns, metrics)

	assert.Equal(t, []string{
		"ai_adoption_rate",
		"job_loss_rate",
		"revenue_increase_rate",
		"human_ai_collaboration_rate",
		"ai_adoption_rate",
	}, chart.Theta, "theta labels repeat the first category")

	require.Len(t, chart.Series, 1)
	assert.Equal(t, "Finance", chart.Series[0].Name)
	assert.Equal(t, []float64{10, 20, 30, 40, 10}, chart.Series[0].Values,
		"first value is appended again to close the polygon")
}

func TestBuildRadarChart_EmptyInputs(t *testing.T) {
	chart := BuildRadarChart(nil, domain.Metrics())
	assert.Len(t, chart.Theta, 5)
	assert.Empty(t, chart.Series)

	chart = BuildRadarChart(nil, nil)
	assert.Empty(t, chart.Theta)
	assert.Empty(t, chart.Series)
}

func TestBuildRadarChart_SkipsIncompleteGroups(t *testing.T) {
	breakdowns := []domain.GroupBreakdown{
		{Group: "Retail", Means: map[domain.Metric]float64{domain.MetricAdoptionRate: 10}},
	}

	chart := BuildRadarChart(breakdowns, domain.Metrics())

	assert.Empty(t, chart.Series)
}

func TestMapSummaryDomainToApi(t *testing.T) {
	t.Run("maps statistics when data is present", func(t *testing.T) {
		summary := MapSummaryDomainToApi(domain.MetricSummary{
			Metric:  domain.MetricAdoptionRate,
			Mean:    15,
			Min:     10,
			Max:     20,
			Count:   3,
			HasData: true,
		})

		require.NotNil(t, summary.Mean)
		assert.Equal(t, 15.0, *summary.Mean)
		assert.Equal(t, 10.0, *summary.Min)
		assert.Equal(t, 20.0, *summary.Max)
		assert.Equal(t, 3, summary.Count)
	})

	t.Run("surfaces no-data as null fields", func(t *testing.T) {
		summary := MapSummaryDomainToApi(domain.MetricSummary{Metric: domain.MetricAdoptionRate})

		assert.Nil(t, summary.Mean)
		assert.Nil(t, summary.Min)
		assert.Nil(t, summary.Max)
		assert.Equal(t, 0, summary.Count)
	})
}

func TestMapCorrelationDomainToApi(t *testing.T) {
	matrix := domain.CorrelationMatrix{
		Metrics: []domain.Metric{domain.MetricAdoptionRate, domain.MetricJobLossRate},
		Values:  [][]float64{{1, 0.5}, {0.5, 0}},
		Defined: [][]bool{{true, true}, {true, false}},
	}

	out := MapCorrelationDomainToApi(matrix)

	assert.Equal(t, []string{"ai_adoption_rate", "job_loss_rate"}, out.Metrics)
	require.NotNil(t, out.Cells[0][1])
	assert.Equal(t, 0.5, *out.Cells[0][1])
	assert.Nil(t, out.Cells[1][1], "undefined cells are null, never zero")
}

func TestMapBreakdownDomainToApi(t *testing.T) {
	metrics := []domain.Metric{domain.MetricAdoptionRate, domain.MetricJobLossRate}

	out := MapBreakdownDomainToApi(domain.GroupBreakdown{
		Group: "USA",
		Count: 2,
		Means: map[domain.Metric]float64{domain.MetricAdoptionRate: 12.5},
	}, metrics)

	assert.Equal(t, "USA", out.Group)
	require.NotNil(t, out.Means["ai_adoption_rate"])
	assert.Equal(t, 12.5, *out.Means["ai_adoption_rate"])
	assert.Nil(t, out.Means["job_loss_rate"])
}

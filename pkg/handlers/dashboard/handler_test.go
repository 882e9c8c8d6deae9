package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/de-tools/impact-atlas/pkg/models/api"
	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockExplorer struct {
	mock.Mock
}

func (m *mockExplorer) Options(ctx context.Context) domain.FilterOptions {
	args := m.Called(ctx)
	return args.Get(0).(domain.FilterOptions)
}

func (m *mockExplorer) Records(ctx context.Context, criteria domain.FilterCriteria) domain.FilteredView {
	args := m.Called(ctx, criteria)
	return args.Get(0).(domain.FilteredView)
}

func (m *mockExplorer) Summaries(ctx context.Context, criteria domain.FilterCriteria) []domain.MetricSummary {
	args := m.Called(ctx, criteria)
	return args.Get(0).([]domain.MetricSummary)
}

func (m *mockExplorer) Trends(ctx context.Context, criteria domain.FilterCriteria) map[domain.Metric][]domain.GroupMean {
	args := m.Called(ctx, criteria)
	return args.Get(0).(map[domain.Metric][]domain.GroupMean)
}

func (m *mockExplorer) Breakdown(
	ctx context.Context,
	criteria domain.FilterCriteria,
	key domain.GroupKey,
) ([]domain.GroupBreakdown, error) {
	args := m.Called(ctx, criteria, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GroupBreakdown), args.Error(1)
}

func (m *mockExplorer) Correlation(ctx context.Context, criteria domain.FilterCriteria) domain.CorrelationMatrix {
	args := m.Called(ctx, criteria)
	return args.Get(0).(domain.CorrelationMatrix)
}

const criteriaBody = `{
	"years": {"min": 2020, "max": 2021},
	"countries": ["USA"],
	"industries": ["Finance"],
	"tools": ["GPT-4"],
	"regulation_statuses": ["Strict"]
}`

func expectedCriteria() domain.FilterCriteria {
	return domain.FilterCriteria{
		Years:              domain.YearRange{Min: 2020, Max: 2021},
		Countries:          []string{"USA"},
		Industries:         []string{"Finance"},
		Tools:              []string{"GPT-4"},
		RegulationStatuses: []string{"Strict"},
	}
}

func TestGetRecords(t *testing.T) {
	explorer := new(mockExplorer)
	explorer.On("Records", mock.Anything, expectedCriteria()).Return(domain.FilteredView{
		{Year: 2020, Country: "USA", Industry: "Finance", TopAITool: "GPT-4", RegulationStatus: "Strict",
			AdoptionRate: 10, JobLossRate: 5, RevenueIncrease: 20, CollaborationRate: 50},
	})
	handler := NewHandler(explorer)

	req := httptest.NewRequest("POST", "/records", strings.NewReader(criteriaBody))
	rec := httptest.NewRecorder()

	handler.GetRecords(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []api.Record
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, []api.Record{{
		Year: 2020, Country: "USA", Industry: "Finance", TopAITool: "GPT-4", RegulationStatus: "Strict",
		AdoptionRate: 10, JobLossRate: 5, RevenueIncrease: 20, CollaborationRate: 50,
	}}, response)

	explorer.AssertExpectations(t)
}

func TestGetRecords_InvalidBody(t *testing.T) {
	handler := NewHandler(new(mockExplorer))

	req := httptest.NewRequest("POST", "/records", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.GetRecords(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSummary_EmptyViewProducesNullStats(t *testing.T) {
	explorer := new(mockExplorer)
	explorer.On("Summaries", mock.Anything, expectedCriteria()).Return([]domain.MetricSummary{
		{Metric: domain.MetricAdoptionRate},
	})
	handler := NewHandler(explorer)

	req := httptest.NewRequest("POST", "/summary", strings.NewReader(criteriaBody))
	rec := httptest.NewRecorder()

	handler.GetSummary(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []api.MetricSummary
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Len(t, response, 1)
	assert.Nil(t, response[0].Mean)
	assert.Nil(t, response[0].Min)
	assert.Nil(t, response[0].Max)

	explorer.AssertExpectations(t)
}

func TestGetBreakdown(t *testing.T) {
	tests := []struct {
		name           string
		group          string
		setupMock      func(*mockExplorer)
		expectedStatus int
	}{
		{
			name:  "known grouping key",
			group: "industry",
			setupMock: func(m *mockExplorer) {
				m.On("Breakdown", mock.Anything, expectedCriteria(), domain.GroupByIndustry).
					Return([]domain.GroupBreakdown{
						{Group: "Finance", Count: 2, Means: map[domain.Metric]float64{
							domain.MetricAdoptionRate: 15,
						}},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "unknown grouping key",
			group: "planet",
			setupMock: func(m *mockExplorer) {
				m.On("Breakdown", mock.Anything, expectedCriteria(), domain.GroupKey("planet")).
					Return(nil, &domain.InvalidCriteriaError{Field: "group", Reason: "unknown grouping key planet"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explorer := new(mockExplorer)
			tt.setupMock(explorer)
			handler := NewHandler(explorer)

			req := httptest.NewRequest("POST", "/breakdown/"+tt.group, strings.NewReader(criteriaBody))
			rec := httptest.NewRecorder()

			// Set up chi context with URL parameters
			ctx := chi.NewRouteContext()
			ctx.URLParams.Add("group", tt.group)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))

			handler.GetBreakdown(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			explorer.AssertExpectations(t)
		})
	}
}

func TestGetRadar(t *testing.T) {
	explorer := new(mockExplorer)
	explorer.On("Breakdown", mock.Anything, expectedCriteria(), domain.GroupByIndustry).
		Return([]domain.GroupBreakdown{
			{Group: "Finance", Count: 1, Means: map[domain.Metric]float64{
				domain.MetricAdoptionRate:      10,
				domain.MetricJobLossRate:       20,
				domain.MetricRevenueIncrease:   30,
				domain.MetricCollaborationRate: 40,
			}},
		}, nil)
	handler := NewHandler(explorer)

	req := httptest.NewRequest("POST", "/radar", strings.NewReader(criteriaBody))
	rec := httptest.NewRecorder()

	handler.GetRadar(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response api.RadarChart
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Len(t, response.Theta, 5)
	assert.Equal(t, response.Theta[0], response.Theta[4])
	assert.Equal(t, []float64{10, 20, 30, 40, 10}, response.Series[0].Values)

	explorer.AssertExpectations(t)
}

func TestGetCorrelation_UndefinedCellsAreNull(t *testing.T) {
	metrics := []domain.Metric{domain.MetricAdoptionRate, domain.MetricJobLossRate}
	explorer := new(mockExplorer)
	explorer.On("Correlation", mock.Anything, expectedCriteria()).Return(domain.CorrelationMatrix{
		Metrics: metrics,
		Values:  [][]float64{{1, 0}, {0, 0}},
		Defined: [][]bool{{true, false}, {false, false}},
	})
	handler := NewHandler(explorer)

	req := httptest.NewRequest("POST", "/correlation", strings.NewReader(criteriaBody))
	rec := httptest.NewRecorder()

	handler.GetCorrelation(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response api.CorrelationMatrix
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.NotNil(t, response.Cells[0][0])
	assert.Nil(t, response.Cells[0][1])
	assert.Nil(t, response.Cells[1][1])

	explorer.AssertExpectations(t)
}

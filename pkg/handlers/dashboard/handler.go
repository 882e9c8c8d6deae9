package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/de-tools/impact-atlas/pkg/adapters"
	"github.com/de-tools/impact-atlas/pkg/models/api"
	"github.com/de-tools/impact-atlas/pkg/models/domain"
	"github.com/de-tools/impact-atlas/pkg/services/dashboard"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	explorer dashboard.Explorer
}

func NewHandler(explorer dashboard.Explorer) *Handler {
	return &Handler{explorer: explorer}
}

// GetFilters returns the selectable filter values and the default criteria.
func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	options := h.explorer.Options(r.Context())

	response := api.FilterOptions{
		Years:              api.YearRange{Min: options.Years.Min, Max: options.Years.Max},
		Countries:          options.Countries,
		Industries:         options.Industries,
		Tools:              options.Tools,
		RegulationStatuses: options.RegulationStatuses,
		Defaults:           adapters.MapCriteriaDomainToApi(options.Defaults),
	}

	writeJSON(r.Context(), w, response)
}

// GetRecords returns the filtered view rows for the raw table display.
func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	criteria, ok := h.readCriteria(w, r)
	if !ok {
		return
	}

	view := h.explorer.Records(r.Context(), criteria)
	writeJSON(r.Context(), w, adapters.MapViewDomainToApi(view))
}

// GetSummary returns the KPI metric summaries. Empty views produce null
// statistics, never zeroes.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	criteria, ok := h.readCriteria(w, r)
	if !ok {
		return
	}

	summaries := h.explorer.Summaries(r.Context(), criteria)
	response := make([]api.MetricSummary, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, adapters.MapSummaryDomainToApi(s))
	}

	writeJSON(r.Context(), w, response)
}

// GetTrends returns the mean-by-year series for every metric.
func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	criteria, ok := h.readCriteria(w, r)
	if !ok {
		return
	}

	trends := h.explorer.Trends(r.Context(), criteria)
	response := make([]api.TrendSeries, 0, len(trends))
	for _, m := range domain.Metrics() {
		response = append(response, adapters.MapTrendDomainToApi(m, trends[m]))
	}

	writeJSON(r.Context(), w, response)
}

// GetBreakdown returns per-metric means grouped by the dimension in the
// URL: country, industry, tool or year.
func (h *Handler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	criteria, ok := h.readCriteria(w, r)
	if !ok {
		return
	}
	key := domain.GroupKey(chi.URLParam(r, "group"))

	breakdowns, err := h.explorer.Breakdown(r.Context(), criteria, key)
	if err != nil {
		var criteriaErr *domain.InvalidCriteriaError
		if errors.As(err, &criteriaErr) {
			writeError(r.Context(), w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(r.Context(), w, http.StatusInternalServerError, "failed to compute breakdown")
		return
	}

	response := make([]api.GroupBreakdown, 0, len(breakdowns))
	for _, b := range breakdowns {
		response = append(response, adapters.MapBreakdownDomainToApi(b, domain.Metrics()))
	}

	writeJSON(r.Context(), w, response)
}

// GetRadar returns the industry radar chart with the polar loop closed.
func (h *Handler) GetRadar(w http.ResponseWriter, r *http.Request) {
	criteria, ok := h.readCriteria(w, r)
	if !ok {
		return
	}

	breakdowns, err := h.explorer.Breakdown(r.Context(), criteria, domain.GroupByIndustry)
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, "failed to compute radar series")
		return
	}

	writeJSON(r.Context(), w, adapters.BuildRadarChart(breakdowns, domain.Metrics()))
}

// GetGeo returns per-record points for the geographic scatter.
func (h *Handler) GetGeo(w http.ResponseWriter, r *http.Request) {
	criteria, ok := h.readCriteria(w, r)
	if !ok {
		return
	}

	view := h.explorer.Records(r.Context(), criteria)
	writeJSON(r.Context(), w, adapters.MapGeoPointsDomainToApi(view))
}

// GetCorrelation returns the metric correlation matrix; undefined cells are
// null.
func (h *Handler) GetCorrelation(w http.ResponseWriter, r *http.Request) {
	criteria, ok := h.readCriteria(w, r)
	if !ok {
		return
	}

	matrix := h.explorer.Correlation(r.Context(), criteria)
	writeJSON(r.Context(), w, adapters.MapCorrelationDomainToApi(matrix))
}

func (h *Handler) readCriteria(w http.ResponseWriter, r *http.Request) (domain.FilterCriteria, bool) {
	var body api.FilterCriteria
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "invalid criteria body")
		return domain.FilterCriteria{}, false
	}
	return adapters.MapCriteriaApiToDomain(body), true
}

func writeJSON(ctx context.Context, w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	zerolog.Ctx(ctx).Warn().Int("status", status).Msg(message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(api.Error{Message: message}); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode error response")
	}
}

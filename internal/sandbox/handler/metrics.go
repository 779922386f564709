package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/aggregating"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/auth"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
	"github.com/vfg2006/insights-dashboard/pkg/apiErrors"
	"github.com/vfg2006/insights-dashboard/pkg/log"
	"github.com/vfg2006/insights-dashboard/pkg/middleware"
	"github.com/vfg2006/insights-dashboard/pkg/utils"
)

// queryDate lê um parâmetro yyyy-MM-dd obrigatório da query string
func queryDate(r *http.Request, name string) (time.Time, *apiErrors.FieldError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		fieldErr := apiErrors.FieldError{Loc: []string{"query", name}, Msg: "field required", Type: "value_error.missing"}
		return time.Time{}, &fieldErr
	}

	date, err := time.Parse(utils.DateLayout, raw)
	if err != nil {
		fieldErr := apiErrors.Invalid("query", name, "invalid date format")
		return time.Time{}, &fieldErr
	}

	return date, nil
}

func metricsResponse(summary aggregating.Summary) backenddomain.MetricsResponse {
	response := backenddomain.MetricsResponse{
		Metrics:      make([]backenddomain.MetricsSummary, 0, len(summary.Metrics)),
		TotalSpend:   summary.TotalSpend,
		TotalRevenue: summary.TotalRevenue,
		AverageROI:   summary.AverageROI,
	}

	for _, m := range summary.Metrics {
		response.Metrics = append(response.Metrics, backenddomain.MetricsSummary{
			MetricDate: utils.FormatDate(m.MetricDate),
			Spend:      m.Spend,
			Revenue:    m.Revenue,
			ROI:        m.ROI,
		})
	}

	return response
}

func dailyMetricRead(m store.DailyMetric) backenddomain.DailyMetricRead {
	return backenddomain.DailyMetricRead{
		ID:         m.ID,
		MetricDate: utils.FormatDate(m.MetricDate),
		Spend:      m.Spend,
		Revenue:    m.Revenue,
		ROI:        m.ROI,
	}
}

func writeMetrics(w http.ResponseWriter, r *http.Request, service *aggregating.Service, userID int) {
	var fieldErrors []apiErrors.FieldError

	start, startErr := queryDate(r, "start_date")
	if startErr != nil {
		fieldErrors = append(fieldErrors, *startErr)
	}
	end, endErr := queryDate(r, "end_date")
	if endErr != nil {
		fieldErrors = append(fieldErrors, *endErr)
	}
	if len(fieldErrors) > 0 {
		apiErrors.WriteValidationError(w, fieldErrors...)
		return
	}

	summary, err := service.List(r.Context(), userID, start, end)
	if errors.Is(err, aggregating.ErrRangeTooLarge) || errors.Is(err, aggregating.ErrInvertedRange) {
		apiErrors.WriteValidationError(w, apiErrors.Invalid("query", "end_date", err.Error()))
		return
	}
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao listar métricas")
		apiErrors.WriteError(w, http.StatusInternalServerError, apiErrors.DetailInternalServer)
		return
	}

	writeJSON(w, r, http.StatusOK, metricsResponse(summary))
}

// GetMetrics devolve as métricas do usuário autenticado no período
func GetMetrics(service *aggregating.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, _ := middleware.UserID(r.Context())
		writeMetrics(w, r, service, userID)
	}
}

// GetUserMetrics é a variante legada, sem autenticação, com o usuário no caminho
func GetUserMetrics(service *aggregating.Service, users *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := existingUser(w, r, users)
		if !ok {
			return
		}
		writeMetrics(w, r, service, userID)
	}
}

// SyncMetrics recalcula o dia informado em ?date= e devolve a linha gravada
func SyncMetrics(service *aggregating.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, fieldErr := queryDate(r, "date")
		if fieldErr != nil {
			apiErrors.WriteValidationError(w, *fieldErr)
			return
		}

		userID, _ := middleware.UserID(r.Context())
		metric, err := service.SyncDay(r.Context(), userID, day)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao sincronizar métricas")
			apiErrors.WriteError(w, http.StatusInternalServerError, apiErrors.DetailInternalServer)
			return
		}

		writeJSON(w, r, http.StatusOK, dailyMetricRead(metric))
	}
}

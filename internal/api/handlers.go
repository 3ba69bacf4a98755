package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/smukkama/crop-advisory/internal/advisory"
	"github.com/smukkama/crop-advisory/internal/alerting"
	"github.com/smukkama/crop-advisory/internal/history"
	"github.com/smukkama/crop-advisory/internal/weather"
	"github.com/smukkama/crop-advisory/pkg/metrics"
)

// AdvisoryHandler serves the advisory and alert history endpoints
type AdvisoryHandler struct {
	service  *advisory.Service
	logger   *zap.Logger
	metrics  *metrics.Collector
	validate *validator.Validate
}

// NewAdvisoryHandler creates a new advisory handler
func NewAdvisoryHandler(service *advisory.Service, logger *zap.Logger, metricsCollector *metrics.Collector) *AdvisoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisoryHandler{
		service:  service,
		logger:   logger,
		metrics:  metricsCollector,
		validate: validator.New(),
	}
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HistoryResponse wraps the alert history list
type HistoryResponse struct {
	Data  []history.Entry `json:"data"`
	Total int             `json:"total"`
}

type advisoryQuery struct {
	Lat  float64 `validate:"min=-90,max=90"`
	Lon  float64 `validate:"min=-180,max=180"`
	Lang string  `validate:"omitempty,max=16"`
}

// GetAdvisory handles GET /api/v1/advisory?lat=&lon=&lang=
func (h *AdvisoryHandler) GetAdvisory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	if q.Get("lat") == "" || q.Get("lon") == "" {
		h.sendError(w, "latitude and longitude are required", http.StatusBadRequest)
		return
	}

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(q.Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		h.sendError(w, "latitude and longitude must be numbers", http.StatusBadRequest)
		return
	}

	query := advisoryQuery{Lat: lat, Lon: lon, Lang: q.Get("lang")}
	if err := h.validate.Struct(query); err != nil {
		h.sendError(w, "invalid query: "+err.Error(), http.StatusBadRequest)
		return
	}

	adv, err := h.service.Build(ctx, query.Lat, query.Lon, query.Lang)
	if err != nil {
		switch {
		case errors.Is(err, weather.ErrInvalidLocation):
			h.sendError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, weather.ErrUpstream):
			h.logger.Warn("weather provider unavailable", zap.Error(err))
			h.sendError(w, "failed to fetch weather data", http.StatusBadGateway)
		default:
			h.logger.Error("failed to build advisory", zap.Error(err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.sendJSON(w, adv, http.StatusOK)
}

// GetHistory handles GET /api/v1/alerts/history
func (h *AdvisoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.History(r.Context())
	if err != nil {
		h.logger.Error("failed to list alert history", zap.Error(err))
		h.sendError(w, "failed to retrieve alert history", http.StatusInternalServerError)
		return
	}

	if entries == nil {
		entries = []history.Entry{}
	}
	h.sendJSON(w, HistoryResponse{Data: entries, Total: len(entries)}, http.StatusOK)
}

// ClearHistory handles DELETE /api/v1/alerts/history
func (h *AdvisoryHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearHistory(r.Context()); err != nil {
		h.logger.Error("failed to clear alert history", zap.Error(err))
		h.sendError(w, "failed to clear alert history", http.StatusInternalServerError)
		return
	}

	h.logger.Info("alert history cleared")
	w.WriteHeader(http.StatusNoContent)
}

// DismissAlert handles POST /api/v1/alerts/{type}/dismiss
func (h *AdvisoryHandler) DismissAlert(w http.ResponseWriter, r *http.Request) {
	alertType := alerting.AlertType(mux.Vars(r)["type"])

	if err := h.service.Dismiss(r.Context(), alertType); err != nil {
		if errors.Is(err, advisory.ErrUnknownAlertType) {
			h.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to dismiss alert", zap.String("type", string(alertType)), zap.Error(err))
		h.sendError(w, "failed to dismiss alert", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /healthz
func (h *AdvisoryHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	h.sendJSON(w, status, http.StatusOK)
}

// sendJSON sends a JSON response
func (h *AdvisoryHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}

// sendError sends an error response
func (h *AdvisoryHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	response := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}
	h.sendJSON(w, response, statusCode)
}

// RegisterRoutes registers all advisory API routes
func (h *AdvisoryHandler) RegisterRoutes(router *mux.Router) {
	router.Use(h.instrument)

	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/advisory", h.GetAdvisory).Methods(http.MethodGet)
	v1.HandleFunc("/alerts/history", h.GetHistory).Methods(http.MethodGet)
	v1.HandleFunc("/alerts/history", h.ClearHistory).Methods(http.MethodDelete)
	v1.HandleFunc("/alerts/{type}/dismiss", h.DismissAlert).Methods(http.MethodPost)

	router.HandleFunc("/healthz", h.HealthCheck).Methods(http.MethodGet)
}

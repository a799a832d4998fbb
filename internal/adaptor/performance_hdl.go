package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"theatre-booking/internal/dto/request"
	"theatre-booking/internal/usecase"
	"theatre-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PerformanceHandler struct {
	service usecase.PerformanceService
	log     *zap.Logger
}

func NewPerformanceHandler(service usecase.PerformanceService, log *zap.Logger) *PerformanceHandler {
	return &PerformanceHandler{
		service: service,
		log:     log.With(zap.String("handler", "performance")),
	}
}

// GetAllPerformances handles GET /api/performances (public)
func (h *PerformanceHandler) GetAllPerformances(w http.ResponseWriter, r *http.Request) {
	performances, err := h.service.GetAllPerformances(r.Context(), paginatedRequest(r))
	if err != nil {
		h.handleServiceError(w, err, "get performances")
		return
	}

	utils.ResponseSuccess(w, "success", performances)
}

// GetPerformanceByID handles GET /api/performances/{id} (public).
// The detail view carries remaining seat availability.
func (h *PerformanceHandler) GetPerformanceByID(w http.ResponseWriter, r *http.Request) {
	performanceID := chi.URLParam(r, "id")
	if performanceID == "" {
		utils.ResponseBadRequest(w, "Performance ID is required", nil)
		return
	}

	performance, err := h.service.GetPerformanceByID(r.Context(), performanceID)
	if err != nil {
		h.handleServiceError(w, err, "get performance by ID")
		return
	}

	utils.ResponseSuccess(w, "success", performance)
}

// ==================== ADMIN METHODS ====================

// CreatePerformance handles POST /api/admin/performances (admin only)
func (h *PerformanceHandler) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	var req request.PerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	performance, err := h.service.CreatePerformance(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create performance")
		return
	}

	utils.ResponseCreated(w, "success", performance)
}

// UpdatePerformance handles PUT /api/admin/performances/{id} (admin only)
func (h *PerformanceHandler) UpdatePerformance(w http.ResponseWriter, r *http.Request) {
	performanceID := chi.URLParam(r, "id")
	if performanceID == "" {
		utils.ResponseBadRequest(w, "Performance ID is required", nil)
		return
	}

	var req request.PerformanceUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	performance, err := h.service.UpdatePerformance(r.Context(), performanceID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update performance")
		return
	}

	utils.ResponseSuccess(w, "success", performance)
}

// DeletePerformance handles DELETE /api/admin/performances/{id} (admin only)
func (h *PerformanceHandler) DeletePerformance(w http.ResponseWriter, r *http.Request) {
	performanceID := chi.URLParam(r, "id")
	if performanceID == "" {
		utils.ResponseBadRequest(w, "Performance ID is required", nil)
		return
	}

	if err := h.service.DeletePerformance(r.Context(), performanceID); err != nil {
		h.handleServiceError(w, err, "delete performance")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *PerformanceHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

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

type PlayHandler struct {
	service usecase.PlayService
	log     *zap.Logger
}

func NewPlayHandler(service usecase.PlayService, log *zap.Logger) *PlayHandler {
	return &PlayHandler{
		service: service,
		log:     log.With(zap.String("handler", "play")),
	}
}

// GetAllPlays handles GET /api/plays (public)
func (h *PlayHandler) GetAllPlays(w http.ResponseWriter, r *http.Request) {
	plays, err := h.service.GetAllPlays(r.Context(), paginatedRequest(r))
	if err != nil {
		h.handleServiceError(w, err, "get plays")
		return
	}

	utils.ResponseSuccess(w, "success", plays)
}

// GetPlayByID handles GET /api/plays/{id} (public)
func (h *PlayHandler) GetPlayByID(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	play, err := h.service.GetPlayByID(r.Context(), playID)
	if err != nil {
		h.handleServiceError(w, err, "get play by ID")
		return
	}

	utils.ResponseSuccess(w, "success", play)
}

// ==================== ADMIN METHODS ====================

// CreatePlay handles POST /api/admin/plays (admin only)
func (h *PlayHandler) CreatePlay(w http.ResponseWriter, r *http.Request) {
	var req request.PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	play, err := h.service.CreatePlay(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create play")
		return
	}

	utils.ResponseCreated(w, "success", play)
}

// UpdatePlay handles PUT /api/admin/plays/{id} (admin only)
func (h *PlayHandler) UpdatePlay(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	var req request.PlayUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	play, err := h.service.UpdatePlay(r.Context(), playID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update play")
		return
	}

	utils.ResponseSuccess(w, "success", play)
}

// DeletePlay handles DELETE /api/admin/plays/{id} (admin only)
func (h *PlayHandler) DeletePlay(w http.ResponseWriter, r *http.Request) {
	playID := chi.URLParam(r, "id")
	if playID == "" {
		utils.ResponseBadRequest(w, "Play ID is required", nil)
		return
	}

	if err := h.service.DeletePlay(r.Context(), playID); err != nil {
		h.handleServiceError(w, err, "delete play")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *PlayHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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

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

// CatalogHandler serves actors, genres and theatre halls. Reads are
// public; writes sit behind the admin middleware.
type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

func paginatedRequest(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}

// ==================== ACTORS ====================

// GetAllActors handles GET /api/actors (public)
func (h *CatalogHandler) GetAllActors(w http.ResponseWriter, r *http.Request) {
	actors, err := h.service.GetAllActors(r.Context(), paginatedRequest(r))
	if err != nil {
		h.handleServiceError(w, err, "get actors")
		return
	}

	utils.ResponseSuccess(w, "success", actors)
}

// GetActorByID handles GET /api/actors/{id} (public)
func (h *CatalogHandler) GetActorByID(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	actor, err := h.service.GetActorByID(r.Context(), actorID)
	if err != nil {
		h.handleServiceError(w, err, "get actor by ID")
		return
	}

	utils.ResponseSuccess(w, "success", actor)
}

// CreateActor handles POST /api/admin/actors (admin only)
func (h *CatalogHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create actor")
		return
	}

	utils.ResponseCreated(w, "success", actor)
}

// UpdateActor handles PUT /api/admin/actors/{id} (admin only)
func (h *CatalogHandler) UpdateActor(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	var req request.ActorUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	actor, err := h.service.UpdateActor(r.Context(), actorID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update actor")
		return
	}

	utils.ResponseSuccess(w, "success", actor)
}

// DeleteActor handles DELETE /api/admin/actors/{id} (admin only)
func (h *CatalogHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	if err := h.service.DeleteActor(r.Context(), actorID); err != nil {
		h.handleServiceError(w, err, "delete actor")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== GENRES ====================

// GetAllGenres handles GET /api/genres (public)
func (h *CatalogHandler) GetAllGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetAllGenres(r.Context(), paginatedRequest(r))
	if err != nil {
		h.handleServiceError(w, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "success", genres)
}

// GetGenreByID handles GET /api/genres/{id} (public)
func (h *CatalogHandler) GetGenreByID(w http.ResponseWriter, r *http.Request) {
	genreID := chi.URLParam(r, "id")
	if genreID == "" {
		utils.ResponseBadRequest(w, "Genre ID is required", nil)
		return
	}

	genre, err := h.service.GetGenreByID(r.Context(), genreID)
	if err != nil {
		h.handleServiceError(w, err, "get genre by ID")
		return
	}

	utils.ResponseSuccess(w, "success", genre)
}

// CreateGenre handles POST /api/admin/genres (admin only)
func (h *CatalogHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "success", genre)
}

// UpdateGenre handles PUT /api/admin/genres/{id} (admin only)
func (h *CatalogHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	genreID := chi.URLParam(r, "id")
	if genreID == "" {
		utils.ResponseBadRequest(w, "Genre ID is required", nil)
		return
	}

	var req request.GenreUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.UpdateGenre(r.Context(), genreID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update genre")
		return
	}

	utils.ResponseSuccess(w, "success", genre)
}

// DeleteGenre handles DELETE /api/admin/genres/{id} (admin only)
func (h *CatalogHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	genreID := chi.URLParam(r, "id")
	if genreID == "" {
		utils.ResponseBadRequest(w, "Genre ID is required", nil)
		return
	}

	if err := h.service.DeleteGenre(r.Context(), genreID); err != nil {
		h.handleServiceError(w, err, "delete genre")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== THEATRE HALLS ====================

// GetAllTheatreHalls handles GET /api/theatre-halls (public)
func (h *CatalogHandler) GetAllTheatreHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.GetAllTheatreHalls(r.Context(), paginatedRequest(r))
	if err != nil {
		h.handleServiceError(w, err, "get theatre halls")
		return
	}

	utils.ResponseSuccess(w, "success", halls)
}

// GetTheatreHallByID handles GET /api/theatre-halls/{id} (public)
func (h *CatalogHandler) GetTheatreHallByID(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Theatre hall ID is required", nil)
		return
	}

	hall, err := h.service.GetTheatreHallByID(r.Context(), hallID)
	if err != nil {
		h.handleServiceError(w, err, "get theatre hall by ID")
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}

// CreateTheatreHall handles POST /api/admin/theatre-halls (admin only)
func (h *CatalogHandler) CreateTheatreHall(w http.ResponseWriter, r *http.Request) {
	var req request.TheatreHallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hall, err := h.service.CreateTheatreHall(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create theatre hall")
		return
	}

	utils.ResponseCreated(w, "success", hall)
}

// UpdateTheatreHall handles PUT /api/admin/theatre-halls/{id} (admin only)
func (h *CatalogHandler) UpdateTheatreHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Theatre hall ID is required", nil)
		return
	}

	var req request.TheatreHallUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	hall, err := h.service.UpdateTheatreHall(r.Context(), hallID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update theatre hall")
		return
	}

	utils.ResponseSuccess(w, "success", hall)
}

// DeleteTheatreHall handles DELETE /api/admin/theatre-halls/{id} (admin only)
func (h *CatalogHandler) DeleteTheatreHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Theatre hall ID is required", nil)
		return
	}

	if err := h.service.DeleteTheatreHall(r.Context(), hallID); err != nil {
		h.handleServiceError(w, err, "delete theatre hall")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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

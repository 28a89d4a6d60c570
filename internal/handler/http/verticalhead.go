package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type VerticalHeadHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type verticalHeadHandlerImpl struct {
	verticalLeadService user.VerticalLeadService
}

func NewVerticalHeadHandler(verticalLeadService user.VerticalLeadService) VerticalHeadHandler {
	return &verticalHeadHandlerImpl{
		verticalLeadService: verticalLeadService,
	}
}

// Create implements VerticalHeadHandler.
func (h *verticalHeadHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateVerticalLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create lead request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	lead, err := h.verticalLeadService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":       "Vertical head created successfully",
		"vertical_head": lead,
	})
}

// List implements VerticalHeadHandler.
func (h *verticalHeadHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.verticalLeadService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message":        "Vertical heads fetched successfully",
		"count":          len(leads),
		"vertical_heads": leads,
	})
}

// Get implements VerticalHeadHandler.
func (h *verticalHeadHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	rollNo := chi.URLParam(r, "roll_no")

	lead, err := h.verticalLeadService.Get(r.Context(), rollNo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message":       "Vertical head fetched successfully",
		"vertical_head": lead,
	})
}

// Update implements VerticalHeadHandler.
func (h *verticalHeadHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateVerticalLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update lead request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.RollNo = chi.URLParam(r, "roll_no")
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	lead, err := h.verticalLeadService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message":       "Vertical head updated successfully",
		"vertical_head": lead,
	})
}

// Delete implements VerticalHeadHandler.
func (h *verticalHeadHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	rollNo := chi.URLParam(r, "roll_no")

	if err := h.verticalLeadService.Delete(r.Context(), rollNo); err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Vertical head deleted successfully",
	})
}

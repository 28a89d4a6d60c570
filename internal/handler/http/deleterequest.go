package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/deleterequest"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DeleteRequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type deleteRequestHandlerImpl struct {
	deleteRequestService deleterequest.DeleteRequestService
}

func NewDeleteRequestHandler(deleteRequestService deleterequest.DeleteRequestService) DeleteRequestHandler {
	return &deleteRequestHandlerImpl{
		deleteRequestService: deleteRequestService,
	}
}

// Create implements DeleteRequestHandler.
func (h *deleteRequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req deleterequest.CreateDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode delete request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.RequestedBy = session.Actor()
	req.Vertical = session.Vertical
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.deleteRequestService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":        "Delete request submitted successfully",
		"delete_request": created,
	})
}

// List implements DeleteRequestHandler. The optional status query parameter
// narrows results to pending, approved, or rejected.
func (h *deleteRequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *deleterequest.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := deleterequest.Status(raw)
		if !s.Valid() {
			response.BadRequest(w, "status must be one of pending, approved, rejected")
			return
		}
		status = &s
	}

	requests, err := h.deleteRequestService.List(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message":         "Delete requests fetched successfully",
		"count":           len(requests),
		"delete_requests": requests,
	})
}

// Get implements DeleteRequestHandler.
func (h *deleteRequestHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	req, err := h.deleteRequestService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message":        "Delete request fetched successfully",
		"delete_request": req,
	})
}

// Review implements DeleteRequestHandler.
func (h *deleteRequestHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req deleterequest.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode review request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.ReviewedBy = session.Actor()
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	reviewed, err := h.deleteRequestService.Review(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message":        "Delete request reviewed successfully",
		"delete_request": reviewed,
	})
}

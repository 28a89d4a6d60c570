package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/meeting"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MeetingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type meetingHandlerImpl struct {
	meetingService meeting.MeetingService
}

func NewMeetingHandler(meetingService meeting.MeetingService) MeetingHandler {
	return &meetingHandlerImpl{
		meetingService: meetingService,
	}
}

// Create implements MeetingHandler.
func (h *meetingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req meeting.CreateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create meeting request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.Vertical = session.Vertical
	req.CreatedBy = session.Actor()
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	m, err := h.meetingService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Meeting created successfully",
		"meeting": m,
	})
}

// List implements MeetingHandler.
func (h *meetingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	meetings, err := h.meetingService.List(r.Context(), session.Scope())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Meetings fetched successfully",
		"count":    len(meetings),
		"meetings": meetings,
	})
}

// Get implements MeetingHandler.
func (h *meetingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	m, err := h.meetingService.Get(r.Context(), chi.URLParam(r, "id"), session.Scope())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Meeting fetched successfully",
		"meeting": m,
	})
}

// Update implements MeetingHandler.
func (h *meetingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req meeting.UpdateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update meeting request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = chi.URLParam(r, "id")
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	m, err := h.meetingService.Update(r.Context(), req, session.Scope())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Meeting updated successfully",
		"meeting": m,
	})
}

// Delete implements MeetingHandler.
func (h *meetingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.meetingService.Delete(r.Context(), chi.URLParam(r, "id"), session.Scope()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Meeting deleted successfully",
	})
}

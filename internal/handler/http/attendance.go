package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/summary"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	GetRoster(w http.ResponseWriter, r *http.Request)
	UpdateRoster(w http.ResponseWriter, r *http.Request)
	SummaryAll(w http.ResponseWriter, r *http.Request)
	DownloadReport(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	defaultThreshold  int
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, defaultThreshold int) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		defaultThreshold:  defaultThreshold,
	}
}

// GetRoster implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetRoster(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	m, roster, err := h.attendanceService.GetRoster(r.Context(), chi.URLParam(r, "id"), session.Scope())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Members and attendance fetched successfully",
		"meeting": m,
		"count":   len(roster),
		"members": roster,
	})
}

// UpdateRoster implements AttendanceHandler.
func (h *attendanceHandlerImpl) UpdateRoster(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode attendance update request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.MeetingID = chi.URLParam(r, "id")
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.UpdateRoster(r.Context(), req, session.Scope())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// SummaryAll implements AttendanceHandler.
func (h *attendanceHandlerImpl) SummaryAll(w http.ResponseWriter, r *http.Request) {
	rows, err := h.attendanceService.SummaryAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"attendance_summary": rows,
	})
}

// DownloadReport streams the low-attendance CSV. The threshold query
// parameter overrides the configured default; threshold=none disables the
// filter and exports everyone.
func (h *attendanceHandlerImpl) DownloadReport(w http.ResponseWriter, r *http.Request) {
	threshold := &h.defaultThreshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		if raw == "none" {
			threshold = nil
		} else {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 || parsed > 100 {
				response.BadRequest(w, "threshold must be an integer between 0 and 100, or 'none'")
				return
			}
			threshold = &parsed
		}
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+summary.ReportFilename(time.Now())+`"`)
	if err := h.attendanceService.WriteReport(r.Context(), w, threshold); err != nil {
		slog.Error("Failed to stream attendance report", "error", err)
	}
}

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/member"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	membersvc "github.com/attendly/attendance-backend-go/internal/service/member"
	"github.com/go-chi/chi/v5"
)

// maxUploadSize bounds the members workbook upload at 5 MiB.
const maxUploadSize = 5 << 20

type MemberHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AdminDelete(w http.ResponseWriter, r *http.Request)
	ListDeleted(w http.ResponseWriter, r *http.Request)
	UploadXLSX(w http.ResponseWriter, r *http.Request)
	DownloadTemplate(w http.ResponseWriter, r *http.Request)
}

type memberHandlerImpl struct {
	memberService member.MemberService
}

func NewMemberHandler(memberService member.MemberService) MemberHandler {
	return &memberHandlerImpl{
		memberService: memberService,
	}
}

// Add implements MemberHandler.
func (h *memberHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req member.AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode add member request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.Vertical = session.Vertical
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	m, err := h.memberService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Member added successfully",
		"member":  m,
	})
}

// List implements MemberHandler.
func (h *memberHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	members, err := h.memberService.List(r.Context(), session.Vertical)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Members fetched successfully",
		"count":   len(members),
		"members": members,
	})
}

// Get implements MemberHandler.
func (h *memberHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	m, err := h.memberService.Get(r.Context(), chi.URLParam(r, "roll_no"), session.Vertical)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Member fetched successfully",
		"member":  m,
	})
}

// Update implements MemberHandler.
func (h *memberHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req member.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update member request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.RollNo = chi.URLParam(r, "roll_no")
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	m, err := h.memberService.Update(r.Context(), req, session.Vertical)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Member updated successfully",
		"member":  m,
	})
}

// Delete implements MemberHandler.
func (h *memberHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rollNo := chi.URLParam(r, "roll_no")
	if err := h.memberService.Delete(r.Context(), rollNo, session.Vertical, session.Actor()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Member deleted successfully",
	})
}

// AdminDelete removes a member from any vertical.
func (h *memberHandlerImpl) AdminDelete(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rollNo := chi.URLParam(r, "roll_no")
	if err := h.memberService.Delete(r.Context(), rollNo, "", session.Actor()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Member deleted successfully",
	})
}

// ListDeleted implements MemberHandler.
func (h *memberHandlerImpl) ListDeleted(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.ListDeleted(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Deleted members fetched successfully",
		"count":   len(members),
		"members": members,
	})
}

// UploadXLSX implements MemberHandler.
func (h *memberHandlerImpl) UploadXLSX(w http.ResponseWriter, r *http.Request) {
	session, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart upload")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing 'file' field in upload")
		return
	}
	defer file.Close()

	result, err := h.memberService.UploadXLSX(r.Context(), session.Vertical, file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// DownloadTemplate streams the empty members workbook.
func (h *memberHandlerImpl) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := membersvc.Template()
	if err != nil {
		slog.Error("Failed to build members template", "error", err)
		response.InternalServerError(w, "Failed to build members template")
		return
	}
	defer tmpl.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="members-template.xlsx"`)
	if err := tmpl.Write(w); err != nil {
		slog.Error("Failed to stream members template", "error", err)
	}
}

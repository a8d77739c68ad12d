package handler

import (
	"net/http"
	"strconv"

	"github.com/JaniDhruv/EduResolve/models"
	"github.com/JaniDhruv/EduResolve/service"
)

// OversightHandler serves the HOD/Admin oversight views.
type OversightHandler struct {
	service *service.ComplaintService
}

// NewOversightHandler creates a new oversight handler.
func NewOversightHandler(svc *service.ComplaintService) *OversightHandler {
	return &OversightHandler{service: svc}
}

// ListComplaints handles GET /api/oversight/complaints?status=&teacher_id=&student_id=
// Returns the department-scoped complaint list plus the rosters backing the
// filter controls. Route access is gated to HOD and Admin roles.
func (h *OversightHandler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	filters := models.OversightFilters{
		Status: r.URL.Query().Get("status"),
	}
	if v := r.URL.Query().Get("teacher_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Validation error", "teacher_id must be a number")
			return
		}
		filters.TeacherID = id
	}
	if v := r.URL.Query().Get("student_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Validation error", "student_id must be a number")
			return
		}
		filters.StudentID = id
	}

	resp, err := h.service.ListForOversight(actor, filters)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

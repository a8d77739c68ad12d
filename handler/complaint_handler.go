package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/JaniDhruv/EduResolve/models"
	"github.com/JaniDhruv/EduResolve/service"
	"github.com/JaniDhruv/EduResolve/storage"
)

// maxUploadBytes caps a single create-complaint request body.
const maxUploadBytes = 20 << 20

// ComplaintHandler handles HTTP requests for complaints.
type ComplaintHandler struct {
	service   *service.ComplaintService
	fileStore storage.FileStore
}

// NewComplaintHandler creates a new complaint handler.
func NewComplaintHandler(svc *service.ComplaintService, fileStore storage.FileStore) *ComplaintHandler {
	return &ComplaintHandler{
		service:   svc,
		fileStore: fileStore,
	}
}

// ListRecipients handles GET /api/complaints/recipients
// Returns the eligible assignees for the actor, grouped for display.
func (h *ComplaintHandler) ListRecipients(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	options, err := h.service.ResolveRecipients(actor)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"recipients": options})
}

// CreateComplaint handles POST /api/complaints
// Accepts either a JSON body or a multipart form with file attachments.
func (h *ComplaintHandler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateComplaintRequest
	var attachmentPaths []string

	// If the complaint is never created, stored blobs must not linger.
	removeSaved := func() {
		for _, path := range attachmentPaths {
			if err := h.fileStore.Remove(path); err != nil {
				log.Printf("[complaint] failed to remove orphaned attachment %s: %v", path, err)
			}
		}
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse multipart form")
			return
		}

		req.Title = r.FormValue("title")
		req.Description = r.FormValue("description")
		req.Category = r.FormValue("category")
		recipientID, err := strconv.ParseInt(r.FormValue("recipient_id"), 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Validation error", "recipient_id must be a number")
			return
		}
		req.RecipientID = recipientID

		for _, fh := range r.MultipartForm.File["attachments"] {
			f, err := fh.Open()
			if err != nil {
				removeSaved()
				respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to read attachment")
				return
			}
			path, err := h.fileStore.Save(fh.Filename, f)
			f.Close()
			if err != nil {
				removeSaved()
				respondWithError(w, http.StatusInternalServerError, "Internal error", "Failed to store attachment")
				return
			}
			attachmentPaths = append(attachmentPaths, path)
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
			return
		}
	}

	resp, err := h.service.CreateComplaint(actor, &req, attachmentPaths)
	if err != nil {
		removeSaved()
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, resp)
}

// ListComplaints handles GET /api/complaints?status=&origin=
func (h *ComplaintHandler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	statusFilter := r.URL.Query().Get("status")
	originFilter := r.URL.Query().Get("origin")

	complaints, err := h.service.ListComplaints(actor, statusFilter, originFilter)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"complaints": complaints,
		"count":      len(complaints),
	})
}

// GetComplaint handles GET /api/complaints/{id}
func (h *ComplaintHandler) GetComplaint(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	complaintID, err := complaintIDFromPath(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Invalid complaint ID")
		return
	}

	detail, err := h.service.GetComplaintDetail(actor, complaintID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, detail)
}

// UpdateStatus handles PUT /api/complaints/{id}/status
func (h *ComplaintHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	complaintID, err := complaintIDFromPath(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Invalid complaint ID")
		return
	}

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}

	resp, err := h.service.UpdateStatus(actor, complaintID, &req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// AddComment handles POST /api/complaints/{id}/comments
func (h *ComplaintHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	complaintID, err := complaintIDFromPath(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Invalid complaint ID")
		return
	}

	var req models.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}

	comment, err := h.service.AddComment(actor, complaintID, &req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, comment)
}

// ListCategories handles GET /api/complaints/categories
func (h *ComplaintHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"categories": models.CategoryOptions()})
}

func complaintIDFromPath(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars["id"], 10, 64)
}

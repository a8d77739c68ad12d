package handler

import (
	"net/http"

	"github.com/JaniDhruv/EduResolve/service"
)

// EscalationHandler exposes a manual sweep trigger for administrators. The
// background worker runs the same sweep on its own schedule.
type EscalationHandler struct {
	service *service.EscalationService
}

// NewEscalationHandler creates a new escalation handler.
func NewEscalationHandler(svc *service.EscalationService) *EscalationHandler {
	return &EscalationHandler{service: svc}
}

// TriggerSweep handles POST /api/escalation/sweep
func (h *EscalationHandler) TriggerSweep(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.RunOnce()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/JaniDhruv/EduResolve/models"
	"github.com/JaniDhruv/EduResolve/service"
)

// AuthHandler handles registration, login and the registration form data.
type AuthHandler struct {
	userService *service.UserService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}

	resp, err := h.userService.Register(&req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request", "Failed to parse request body")
		return
	}

	resp, err := h.userService.Login(&req)
	if err != nil {
		// Do not leak whether the email exists.
		respondWithError(w, http.StatusUnauthorized, "Unauthorized", "Invalid email or password.")
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}

// ListDepartments handles GET /api/departments
func (h *AuthHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.userService.ListDepartments()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"departments": departments})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	respondWithJSON(w, http.StatusOK, actor)
}

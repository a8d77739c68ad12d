package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JaniDhruv/EduResolve/handler"
	"github.com/JaniDhruv/EduResolve/middleware"
	"github.com/JaniDhruv/EduResolve/models"
	"github.com/JaniDhruv/EduResolve/service"
	"github.com/JaniDhruv/EduResolve/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	userService *service.UserService,
	complaintService *service.ComplaintService,
	dashboardService *service.DashboardService,
	escalationService *service.EscalationService,
	fileStore storage.FileStore,
	jwtSecret string,
	uploadBasePath string,
) *mux.Router {
	router := mux.NewRouter()

	authHandler := handler.NewAuthHandler(userService)
	complaintHandler := handler.NewComplaintHandler(complaintService, fileStore)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	oversightHandler := handler.NewOversightHandler(complaintService)
	escalationHandler := handler.NewEscalationHandler(escalationService)

	authMiddleware := middleware.NewAuthMiddleware(userService, jwtSecret)
	requireOversight := middleware.RequireRoles(models.RoleHOD, models.RoleAdmin)
	requireAdmin := middleware.RequireRoles(models.RoleAdmin)

	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/departments", authHandler.ListDepartments).Methods("GET")

	// Authenticated routes
	api.Handle("/auth/me", authMiddleware.RequireAuth(http.HandlerFunc(authHandler.Me))).Methods("GET")
	api.Handle("/dashboard", authMiddleware.RequireAuth(http.HandlerFunc(dashboardHandler.Overview))).Methods("GET")

	// Complaint routes. The fixed paths must register before /{id}.
	complaints := api.PathPrefix("/complaints").Subrouter()
	complaints.Handle("/recipients", authMiddleware.RequireAuth(http.HandlerFunc(complaintHandler.ListRecipients))).Methods("GET")
	complaints.Handle("/categories", authMiddleware.RequireAuth(http.HandlerFunc(complaintHandler.ListCategories))).Methods("GET")
	complaints.Handle("", authMiddleware.RequireAuth(http.HandlerFunc(complaintHandler.ListComplaints))).Methods("GET")
	complaints.Handle("", authMiddleware.RequireAuth(http.HandlerFunc(complaintHandler.CreateComplaint))).Methods("POST")
	complaints.Handle("/{id}", authMiddleware.RequireAuth(http.HandlerFunc(complaintHandler.GetComplaint))).Methods("GET")
	complaints.Handle("/{id}/status", authMiddleware.RequireAuth(http.HandlerFunc(complaintHandler.UpdateStatus))).Methods("PUT")
	complaints.Handle("/{id}/comments", authMiddleware.RequireAuth(http.HandlerFunc(complaintHandler.AddComment))).Methods("POST")

	// Oversight routes (HOD and Admin only)
	api.Handle("/oversight/complaints",
		authMiddleware.RequireAuth(requireOversight(http.HandlerFunc(oversightHandler.ListComplaints)))).Methods("GET")

	// Manual escalation sweep (Admin only; the worker runs on its own schedule)
	api.Handle("/escalation/sweep",
		authMiddleware.RequireAuth(requireAdmin(http.HandlerFunc(escalationHandler.TriggerSweep)))).Methods("POST")

	// Attachment downloads
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadBasePath))))

	return router
}

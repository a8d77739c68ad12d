package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"github.com/JaniDhruv/EduResolve/config"
	"github.com/JaniDhruv/EduResolve/repository"
	"github.com/JaniDhruv/EduResolve/routes"
	"github.com/JaniDhruv/EduResolve/schema"
	"github.com/JaniDhruv/EduResolve/service"
	"github.com/JaniDhruv/EduResolve/storage"
	"github.com/JaniDhruv/EduResolve/worker"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize database connection (UTC for consistent timestamps)
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Database connection established")

	// Ensure schema and seed data
	schema.InitializeDatabase(db)
	schema.SeedDatabase(db, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)

	// Initialize repositories
	complaintRepo := repository.NewComplaintRepository(db)
	userRepo := repository.NewUserRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)

	// Initialize attachment storage
	fileStore, err := storage.NewLocalFileStore(cfg.Uploads.BasePath)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Initialize services
	userService := service.NewUserService(userRepo, departmentRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenHours)
	complaintService := service.NewComplaintService(complaintRepo, userRepo, nil)
	dashboardService := service.NewDashboardService(complaintRepo)
	escalationService := service.NewEscalationService(
		complaintRepo,
		time.Duration(cfg.Escalation.StaleAfterHours)*time.Hour,
		nil,
	)

	// Start the escalation worker. It sweeps immediately and then on the
	// configured interval.
	escalationWorker := worker.NewEscalationWorker(
		escalationService,
		time.Duration(cfg.Escalation.IntervalHours)*time.Hour,
	)
	escalationWorker.Start()

	// Setup routes
	router := routes.SetupRoutes(
		userService,
		complaintService,
		dashboardService,
		escalationService,
		fileStore,
		cfg.Auth.JWTSecret,
		cfg.Uploads.BasePath,
	)

	// Add CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Max-Age", "3600")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: corsHandler(router),
	}

	// Stop the worker cleanly on SIGINT/SIGTERM; an in-flight sweep finishes
	// its batch before the process exits.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutdown signal received")
		escalationWorker.Stop()
		server.Close()
	}()

	log.Printf("Server starting on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}

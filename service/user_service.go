package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/JaniDhruv/EduResolve/models"
	"github.com/JaniDhruv/EduResolve/repository"
	"github.com/JaniDhruv/EduResolve/utils"
)

// UserService handles account registration and authentication.
type UserService struct {
	userRepo       *repository.UserRepository
	departmentRepo *repository.DepartmentRepository
	jwtSecret      []byte
	tokenHours     int
}

// NewUserService creates a new user service.
func NewUserService(
	userRepo *repository.UserRepository,
	departmentRepo *repository.DepartmentRepository,
	jwtSecret string,
	tokenHours int,
) *UserService {
	if tokenHours <= 0 {
		tokenHours = 24
	}
	return &UserService{
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
		jwtSecret:      []byte(jwtSecret),
		tokenHours:     tokenHours,
	}
}

// Register creates a Student or Teacher account. Both roles require a
// department; other roles cannot self-register.
func (s *UserService) Register(req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required: %w", models.ErrValidation)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required: %w", models.ErrValidation)
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, fmt.Errorf("first and last name are required: %w", models.ErrValidation)
	}

	role, ok := models.ParseRole(req.Role)
	if !ok || (role != models.RoleStudent && role != models.RoleTeacher) {
		return nil, fmt.Errorf("role must be Student or Teacher: %w", models.ErrValidation)
	}
	if req.DepartmentID == nil {
		return nil, fmt.Errorf("please select a department for the chosen role: %w", models.ErrValidation)
	}
	if _, err := s.departmentRepo.GetDepartmentByID(*req.DepartmentID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("unknown department: %w", models.ErrValidation)
		}
		return nil, err
	}

	if existing, err := s.userRepo.GetUserByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("email already registered: %w", models.ErrValidation)
	} else if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		PasswordHash: hash,
		Role:         role,
		DepartmentID: req.DepartmentID,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	log.Printf("[account] registered user %d with role %s", user.UserID, role)

	token, err := utils.GenerateJWT(user, s.jwtSecret, s.tokenHours)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login authenticates by email and password, issuing a session token.
func (s *UserService) Login(req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("invalid login attempt: %w", models.ErrAccessDenied)
		}
		return nil, err
	}

	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, fmt.Errorf("invalid login attempt: %w", models.ErrAccessDenied)
	}

	token, err := utils.GenerateJWT(user, s.jwtSecret, s.tokenHours)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// GetUserByID loads the actor backing a session token.
func (s *UserService) GetUserByID(userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(userID)
}

// ListDepartments returns the departments offered on the registration form.
func (s *UserService) ListDepartments() ([]models.Department, error) {
	return s.departmentRepo.ListDepartments()
}

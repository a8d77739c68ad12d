package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/JaniDhruv/EduResolve/models"
)

// UserRepository handles database operations for users.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	var role string
	var dept sql.NullInt64

	err := row.Scan(
		&u.UserID, &u.Email, &u.FirstName, &u.LastName,
		&u.PasswordHash, &role, &dept, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Role, _ = models.ParseRole(role)
	if dept.Valid {
		u.DepartmentID = &dept.Int64
	}

	return &u, nil
}

const userColumns = `user_id, email, first_name, last_name, password_hash, role, department_id, created_at`

// GetUserByID retrieves a user by id. Returns models.ErrNotFound if absent.
func (r *UserRepository) GetUserByID(userID int64) (*models.User, error) {
	u, err := scanUser(r.db.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE user_id = ?`, userID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %d: %w", userID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email. Returns models.ErrNotFound if
// absent.
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

// CreateUser inserts a new user and fills in its id.
func (r *UserRepository) CreateUser(u *models.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Exec(`
		INSERT INTO users (email, first_name, last_name, password_hash, role, department_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, u.Email, u.FirstName, u.LastName, u.PasswordHash, u.Role.String(), u.DepartmentID, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user ID: %w", err)
	}

	u.UserID = userID
	return nil
}

// ListUsersByRole retrieves all users holding the given role.
func (r *UserRepository) ListUsersByRole(role models.Role) ([]models.User, error) {
	rows, err := r.db.Query(
		`SELECT `+userColumns+` FROM users WHERE role = ? ORDER BY first_name, last_name`,
		role.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query users by role: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// ListUsersByRoles retrieves users holding any of the given roles; used to
// build recipient candidate sets.
func (r *UserRepository) ListUsersByRoles(roles ...models.Role) ([]models.User, error) {
	var users []models.User
	for _, role := range roles {
		batch, err := r.ListUsersByRole(role)
		if err != nil {
			return nil, err
		}
		users = append(users, batch...)
	}
	return users, nil
}

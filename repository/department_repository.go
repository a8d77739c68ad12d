package repository

import (
	"database/sql"
	"fmt"

	"github.com/JaniDhruv/EduResolve/models"
)

// DepartmentRepository handles database operations for departments.
type DepartmentRepository struct {
	db *sql.DB
}

// NewDepartmentRepository creates a new department repository.
func NewDepartmentRepository(db *sql.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// ListDepartments retrieves all departments ordered by name.
func (r *DepartmentRepository) ListDepartments() ([]models.Department, error) {
	rows, err := r.db.Query(`SELECT department_id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []models.Department
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.DepartmentID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating departments: %w", err)
	}

	return departments, nil
}

// GetDepartmentByID retrieves one department. Returns models.ErrNotFound if
// absent.
func (r *DepartmentRepository) GetDepartmentByID(departmentID int64) (*models.Department, error) {
	var d models.Department
	err := r.db.QueryRow(
		`SELECT department_id, name FROM departments WHERE department_id = ?`,
		departmentID).Scan(&d.DepartmentID, &d.Name)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("department %d: %w", departmentID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return &d, nil
}

// EnsureDepartment inserts the department if a row with the same name does
// not already exist, returning its id either way. Names are unique.
func (r *DepartmentRepository) EnsureDepartment(name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(`SELECT department_id FROM departments WHERE name = ?`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up department: %w", err)
	}

	result, err := r.db.Exec(`INSERT INTO departments (name) VALUES (?)`, name)
	if err != nil {
		return 0, fmt.Errorf("failed to create department: %w", err)
	}

	id, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get department ID: %w", err)
	}

	return id, nil
}

// Package schema: safe database initialization. Creates only missing tables,
// never drops or overwrites.
package schema

import (
	"database/sql"
	"log"
)

// InitializeDatabase ensures core tables exist. Checks
// INFORMATION_SCHEMA.TABLES and creates only missing tables, in dependency
// order: departments → users → complaints → comments → complaint_attachments.
// Does not drop or recreate tables; does not remove data.
func InitializeDatabase(db *sql.DB) {
	ensureTable(db, "departments", createDepartmentsTable)
	ensureTable(db, "users", createUsersTable)
	ensureTable(db, "complaints", createComplaintsTable)
	ensureTable(db, "comments", createCommentsTable)
	ensureTable(db, "complaint_attachments", createAttachmentsTable)
}

func ensureTable(db *sql.DB, name string, create func(*sql.DB)) {
	exists, err := tableExists(db, name)
	if err != nil {
		log.Fatalf("[SCHEMA] Failed to check if table %s exists: %v", name, err)
	}
	if exists {
		log.Printf("[SCHEMA] %s table exists", name)
		return
	}
	create(db)
	log.Printf("[SCHEMA] created %s table", name)
}

func tableExists(db *sql.DB, name string) (bool, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ?
	`, name).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func createDepartmentsTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS departments (
    department_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    name VARCHAR(255) UNIQUE NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	if _, err := db.Exec(q); err != nil {
		log.Fatalf("[SCHEMA] Failed to create table departments: %v", err)
	}
}

func createUsersTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS users (
    user_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    email VARCHAR(255) UNIQUE NOT NULL,
    first_name VARCHAR(100) NOT NULL,
    last_name VARCHAR(100) NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    role VARCHAR(20) NOT NULL,
    department_id BIGINT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (department_id) REFERENCES departments(department_id) ON DELETE SET NULL,
    INDEX idx_email (email),
    INDEX idx_role (role),
    INDEX idx_department (department_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	if _, err := db.Exec(q); err != nil {
		log.Fatalf("[SCHEMA] Failed to create table users: %v", err)
	}
}

func createComplaintsTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS complaints (
    complaint_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    title VARCHAR(150) NOT NULL,
    description TEXT NOT NULL,
    category VARCHAR(100) NULL,
    status INT NOT NULL DEFAULT 0,
    submitted_by_id BIGINT NOT NULL,
    assigned_to_id BIGINT NOT NULL,
    is_escalated BOOLEAN NOT NULL DEFAULT FALSE,
    escalated_at TIMESTAMP NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NULL,
    FOREIGN KEY (submitted_by_id) REFERENCES users(user_id) ON DELETE RESTRICT,
    FOREIGN KEY (assigned_to_id) REFERENCES users(user_id) ON DELETE RESTRICT,
    INDEX idx_submitted_by (submitted_by_id),
    INDEX idx_assigned_to (assigned_to_id),
    INDEX idx_status (status),
    INDEX idx_status_escalation (status, is_escalated, created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	if _, err := db.Exec(q); err != nil {
		log.Fatalf("[SCHEMA] Failed to create table complaints: %v", err)
	}
}

func createCommentsTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS comments (
    comment_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    complaint_id BIGINT NOT NULL,
    user_id BIGINT NOT NULL,
    content VARCHAR(2000) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (complaint_id) REFERENCES complaints(complaint_id) ON DELETE CASCADE,
    FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE RESTRICT,
    INDEX idx_complaint (complaint_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	if _, err := db.Exec(q); err != nil {
		log.Fatalf("[SCHEMA] Failed to create table comments: %v", err)
	}
}

func createAttachmentsTable(db *sql.DB) {
	q := `
CREATE TABLE IF NOT EXISTS complaint_attachments (
    attachment_id BIGINT PRIMARY KEY AUTO_INCREMENT,
    complaint_id BIGINT NOT NULL,
    file_path VARCHAR(500) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (complaint_id) REFERENCES complaints(complaint_id) ON DELETE CASCADE,
    INDEX idx_complaint (complaint_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	if _, err := db.Exec(q); err != nil {
		log.Fatalf("[SCHEMA] Failed to create table complaint_attachments: %v", err)
	}
}

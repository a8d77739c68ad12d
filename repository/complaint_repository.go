package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/JaniDhruv/EduResolve/models"
)

// ComplaintRepository handles database operations for complaints, comments
// and attachments.
type ComplaintRepository struct {
	db *sql.DB
}

// NewComplaintRepository creates a new complaint repository.
func NewComplaintRepository(db *sql.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

const complaintColumns = `
	c.complaint_id, c.title, c.description, c.category, c.status,
	c.submitted_by_id, c.assigned_to_id, c.is_escalated, c.escalated_at,
	c.created_at, c.updated_at,
	s.user_id, s.email, s.first_name, s.last_name, s.role, s.department_id,
	a.user_id, a.email, a.first_name, a.last_name, a.role, a.department_id`

const complaintJoins = `
	FROM complaints c
	JOIN users s ON s.user_id = c.submitted_by_id
	LEFT JOIN users a ON a.user_id = c.assigned_to_id`

// scanComplaint scans one joined complaint row, including submitter and
// assignee with their departments.
func scanComplaint(row interface{ Scan(...interface{}) error }) (*models.Complaint, error) {
	var c models.Complaint
	var submitter models.User
	var escalatedAt, updatedAt sql.NullTime
	var submitterRole string
	var submitterDept sql.NullInt64
	var assigneeID sql.NullInt64
	var assigneeEmail, assigneeFirst, assigneeLast, assigneeRole sql.NullString
	var assigneeDept sql.NullInt64

	err := row.Scan(
		&c.ComplaintID, &c.Title, &c.Description, &c.Category, &c.Status,
		&c.SubmittedByID, &c.AssignedToID, &c.IsEscalated, &escalatedAt,
		&c.CreatedAt, &updatedAt,
		&submitter.UserID, &submitter.Email, &submitter.FirstName, &submitter.LastName,
		&submitterRole, &submitterDept,
		&assigneeID, &assigneeEmail, &assigneeFirst, &assigneeLast,
		&assigneeRole, &assigneeDept,
	)
	if err != nil {
		return nil, err
	}

	if escalatedAt.Valid {
		c.EscalatedAt = &escalatedAt.Time
	}
	if updatedAt.Valid {
		c.UpdatedAt = &updatedAt.Time
	}

	submitter.Role, _ = models.ParseRole(submitterRole)
	if submitterDept.Valid {
		submitter.DepartmentID = &submitterDept.Int64
	}
	c.SubmittedBy = &submitter

	if assigneeID.Valid {
		assignee := models.User{
			UserID:    assigneeID.Int64,
			Email:     assigneeEmail.String,
			FirstName: assigneeFirst.String,
			LastName:  assigneeLast.String,
		}
		assignee.Role, _ = models.ParseRole(assigneeRole.String)
		if assigneeDept.Valid {
			assignee.DepartmentID = &assigneeDept.Int64
		}
		c.AssignedTo = &assignee
	}

	return &c, nil
}

// CreateComplaint inserts a new complaint and fills in its id.
func (r *ComplaintRepository) CreateComplaint(c *models.Complaint) error {
	query := `
		INSERT INTO complaints (
			title, description, category, status,
			submitted_by_id, assigned_to_id, is_escalated, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(
		query,
		c.Title,
		c.Description,
		c.Category,
		c.Status,
		c.SubmittedByID,
		c.AssignedToID,
		c.IsEscalated,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}

	complaintID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get complaint ID: %w", err)
	}

	c.ComplaintID = complaintID
	return nil
}

// GetComplaintByID retrieves one complaint with submitter and assignee
// loaded. Returns models.ErrNotFound for a missing id.
func (r *ComplaintRepository) GetComplaintByID(complaintID int64) (*models.Complaint, error) {
	query := `SELECT` + complaintColumns + complaintJoins + ` WHERE c.complaint_id = ?`

	c, err := scanComplaint(r.db.QueryRow(query, complaintID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("complaint %d: %w", complaintID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	return c, nil
}

// ListComplaints retrieves every complaint with submitter and assignee
// loaded, in insertion order. Role filtering happens in the policy layer.
func (r *ComplaintRepository) ListComplaints() ([]models.Complaint, error) {
	query := `SELECT` + complaintColumns + complaintJoins + ` ORDER BY c.complaint_id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints: %w", err)
	}
	defer rows.Close()

	var complaints []models.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		complaints = append(complaints, *c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating complaints: %w", err)
	}

	return complaints, nil
}

// UpdateComplaintLocked applies mutate to the complaint row under a row lock
// so concurrent status updates serialize instead of clobbering each other.
// Only the lifecycle fields (status, escalation flag and timestamps) are
// written back.
func (r *ComplaintRepository) UpdateComplaintLocked(complaintID int64, mutate func(*models.Complaint)) (*models.Complaint, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var c models.Complaint
	var escalatedAt, updatedAt sql.NullTime
	err = tx.QueryRow(`
		SELECT complaint_id, title, description, category, status,
			submitted_by_id, assigned_to_id, is_escalated, escalated_at,
			created_at, updated_at
		FROM complaints
		WHERE complaint_id = ?
		FOR UPDATE
	`, complaintID).Scan(
		&c.ComplaintID, &c.Title, &c.Description, &c.Category, &c.Status,
		&c.SubmittedByID, &c.AssignedToID, &c.IsEscalated, &escalatedAt,
		&c.CreatedAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("complaint %d: %w", complaintID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock complaint: %w", err)
	}

	if escalatedAt.Valid {
		c.EscalatedAt = &escalatedAt.Time
	}
	if updatedAt.Valid {
		c.UpdatedAt = &updatedAt.Time
	}

	mutate(&c)

	var newEscalatedAt, newUpdatedAt interface{}
	if c.EscalatedAt != nil {
		newEscalatedAt = *c.EscalatedAt
	}
	if c.UpdatedAt != nil {
		newUpdatedAt = *c.UpdatedAt
	}

	_, err = tx.Exec(`
		UPDATE complaints
		SET status = ?, is_escalated = ?, escalated_at = ?, updated_at = ?
		WHERE complaint_id = ?
	`, c.Status, c.IsEscalated, newEscalatedAt, newUpdatedAt, complaintID)
	if err != nil {
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit complaint update: %w", err)
	}

	return &c, nil
}

// EscalateStale flags every complaint matching the stale predicate (status,
// not yet escalated, created at or before threshold) in one transaction.
// All-or-nothing for one sweep; returns the number flagged.
func (r *ComplaintRepository) EscalateStale(status models.ComplaintStatus, threshold, now time.Time) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin escalation transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE complaints
		SET is_escalated = TRUE, escalated_at = ?, updated_at = ?
		WHERE status = ? AND is_escalated = FALSE AND created_at <= ?
	`, now, now, status, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to escalate stale complaints: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count escalated complaints: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit escalation batch: %w", err)
	}

	return count, nil
}

// AddComment appends a comment and stamps the parent complaint's updated_at
// in the same transaction. Comments are append-only.
func (r *ComplaintRepository) AddComment(comment *models.Comment, now time.Time) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin comment transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO comments (complaint_id, user_id, content, created_at)
		VALUES (?, ?, ?, ?)
	`, comment.ComplaintID, comment.UserID, comment.Content, now)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	commentID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get comment ID: %w", err)
	}
	comment.CommentID = commentID
	comment.CreatedAt = now

	_, err = tx.Exec(`UPDATE complaints SET updated_at = ? WHERE complaint_id = ?`, now, comment.ComplaintID)
	if err != nil {
		return fmt.Errorf("failed to touch complaint: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit comment: %w", err)
	}

	return nil
}

// ListComments retrieves a complaint's comments with authors, newest first.
func (r *ComplaintRepository) ListComments(complaintID int64) ([]models.Comment, error) {
	query := `
		SELECT cm.comment_id, cm.complaint_id, cm.user_id, cm.content, cm.created_at,
			u.user_id, u.email, u.first_name, u.last_name, u.role, u.department_id
		FROM comments cm
		JOIN users u ON u.user_id = cm.user_id
		WHERE cm.complaint_id = ?
		ORDER BY cm.created_at DESC, cm.comment_id DESC
	`

	rows, err := r.db.Query(query, complaintID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var cm models.Comment
		var author models.User
		var role string
		var dept sql.NullInt64

		err := rows.Scan(
			&cm.CommentID, &cm.ComplaintID, &cm.UserID, &cm.Content, &cm.CreatedAt,
			&author.UserID, &author.Email, &author.FirstName, &author.LastName,
			&role, &dept,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}

		author.Role, _ = models.ParseRole(role)
		if dept.Valid {
			author.DepartmentID = &dept.Int64
		}
		cm.Author = &author

		comments = append(comments, cm)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}

// CreateAttachment records the stored file path for a complaint.
func (r *ComplaintRepository) CreateAttachment(a *models.ComplaintAttachment) error {
	result, err := r.db.Exec(`
		INSERT INTO complaint_attachments (complaint_id, file_path, created_at)
		VALUES (?, ?, ?)
	`, a.ComplaintID, a.FilePath, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	attachmentID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get attachment ID: %w", err)
	}
	a.AttachmentID = attachmentID

	return nil
}

// ListAttachments retrieves a complaint's attachments in insertion order.
func (r *ComplaintRepository) ListAttachments(complaintID int64) ([]models.ComplaintAttachment, error) {
	rows, err := r.db.Query(`
		SELECT attachment_id, complaint_id, file_path, created_at
		FROM complaint_attachments
		WHERE complaint_id = ?
		ORDER BY attachment_id
	`, complaintID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments: %w", err)
	}
	defer rows.Close()

	var attachments []models.ComplaintAttachment
	for rows.Next() {
		var a models.ComplaintAttachment
		if err := rows.Scan(&a.AttachmentID, &a.ComplaintID, &a.FilePath, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attachment: %w", err)
		}
		attachments = append(attachments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attachments: %w", err)
	}

	return attachments, nil
}

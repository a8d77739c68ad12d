package models

import "time"

// Field length limits enforced at the service boundary.
const (
	MaxTitleLength       = 150
	MaxDescriptionLength = 4000
	MaxCategoryLength    = 100
	MaxCommentLength     = 2000
)

// CategoryOptions are suggested complaint categories. Free text is accepted;
// the list is advisory only.
func CategoryOptions() []string {
	return []string{"Academic", "Infrastructure", "Hostel", "Administrative", "Other"}
}

// User represents an authenticated participant with a role and an optional
// department. Role is authoritative for every policy decision.
type User struct {
	UserID       int64     `db:"user_id" json:"user_id"`
	Email        string    `db:"email" json:"email"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	DepartmentID *int64    `db:"department_id" json:"department_id,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// DisplayName returns the user's presentation name.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// Department is an organizational unit scoping Teacher/HOD visibility and
// complaint routing. Names are globally unique.
type Department struct {
	DepartmentID int64  `db:"department_id" json:"department_id"`
	Name         string `db:"name" json:"name"`
}

// Complaint is a grievance routed from its submitter to an assignee.
// SubmittedByID is immutable after creation. AssignedToID is set at creation;
// reassignment is deliberately disabled.
type Complaint struct {
	ComplaintID   int64           `db:"complaint_id" json:"complaint_id"`
	Title         string          `db:"title" json:"title"`
	Description   string          `db:"description" json:"description"`
	Category      string          `db:"category" json:"category"`
	Status        ComplaintStatus `db:"status" json:"status"`
	SubmittedByID int64           `db:"submitted_by_id" json:"submitted_by_id"`
	AssignedToID  int64           `db:"assigned_to_id" json:"assigned_to_id"`
	IsEscalated   bool            `db:"is_escalated" json:"is_escalated"`
	EscalatedAt   *time.Time      `db:"escalated_at" json:"escalated_at,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time      `db:"updated_at" json:"updated_at,omitempty"`

	// Loaded relations; nil when the query did not join them.
	SubmittedBy *User `db:"-" json:"submitted_by,omitempty"`
	AssignedTo  *User `db:"-" json:"assigned_to,omitempty"`
}

// SubmitterDepartmentID returns the submitter's department, or nil when the
// submitter is not loaded or has no department.
func (c *Complaint) SubmitterDepartmentID() *int64 {
	if c.SubmittedBy == nil {
		return nil
	}
	return c.SubmittedBy.DepartmentID
}

// AssigneeDepartmentID returns the assignee's department, or nil when the
// assignee is not loaded or has no department.
func (c *Complaint) AssigneeDepartmentID() *int64 {
	if c.AssignedTo == nil {
		return nil
	}
	return c.AssignedTo.DepartmentID
}

// Comment is an append-only remark on a complaint. Never edited or deleted.
type Comment struct {
	CommentID   int64     `db:"comment_id" json:"comment_id"`
	ComplaintID int64     `db:"complaint_id" json:"complaint_id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	Content     string    `db:"content" json:"content"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`

	Author *User `db:"-" json:"author,omitempty"`
}

// ComplaintAttachment stores the opaque path produced by the file store.
type ComplaintAttachment struct {
	AttachmentID int64     `db:"attachment_id" json:"attachment_id"`
	ComplaintID  int64     `db:"complaint_id" json:"complaint_id"`
	FilePath     string    `db:"file_path" json:"file_path"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

package models

import "time"

// CreateComplaintRequest is the payload for submitting a new complaint.
type CreateComplaintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	RecipientID int64  `json:"recipient_id"`
}

// CreateComplaintResponse confirms a created complaint. When some attachment
// records could not be saved, AttachmentsSaved falls short of the uploaded
// count and Message says so.
type CreateComplaintResponse struct {
	ComplaintID      int64  `json:"complaint_id"`
	Status           string `json:"status"`
	AttachmentsSaved int    `json:"attachments_saved"`
	Message          string `json:"message"`
}

// UpdateStatusRequest carries a requested status transition. The token is
// parsed by name or ordinal; unrecognized tokens fail validation.
type UpdateStatusRequest struct {
	NewStatus string `json:"new_status"`
}

// UpdateStatusResponse reports an applied transition.
type UpdateStatusResponse struct {
	ComplaintID int64  `json:"complaint_id"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
}

// AddCommentRequest carries a new comment body.
type AddCommentRequest struct {
	Content string `json:"content"`
}

// RecipientOption is one eligible assignee for a new complaint, grouped for
// display (Teachers, then Heads of Department, then Administrators).
type RecipientOption struct {
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	Group       string `json:"group"`
}

// RegisterRequest creates an account. Only Student and Teacher roles may
// self-register; both require a department.
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         string `json:"role"`
	DepartmentID *int64 `json:"department_id"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse returns the session token and the authenticated actor.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// ComplaintDetail is the single-complaint view with its comments (newest
// first) and attachments, plus the caller's mutation right.
type ComplaintDetail struct {
	Complaint       *Complaint            `json:"complaint"`
	Comments        []Comment             `json:"comments"`
	Attachments     []ComplaintAttachment `json:"attachments"`
	CanUpdateStatus bool                  `json:"can_update_status"`
	StatusOptions   []string              `json:"status_options"`
}

// StudentOverview summarizes a student's own complaints.
type StudentOverview struct {
	TotalComplaints    int         `json:"total_complaints"`
	OpenComplaints     int         `json:"open_complaints"`
	ResolvedComplaints int         `json:"resolved_complaints"`
	RecentComplaints   []Complaint `json:"recent_complaints"`
}

// TeacherOverview summarizes complaints assigned to a teacher.
type TeacherOverview struct {
	NewComplaints        int         `json:"new_complaints"`
	InProgressComplaints int         `json:"in_progress_complaints"`
	ResolvedByMe         int         `json:"resolved_by_me"`
	PendingComplaints    []Complaint `json:"pending_complaints"`
}

// HodOverview summarizes a department's complaints for HOD and Admin users.
type HodOverview struct {
	TotalComplaints        int         `json:"total_complaints"`
	ResolvedComplaints     int         `json:"resolved_complaints"`
	AverageResolutionHours float64     `json:"average_resolution_hours"`
	EscalatedComplaints    []Complaint `json:"escalated_complaints"`
	RecentComplaints       []Complaint `json:"recent_complaints"`
}

// DashboardResponse is the role-specific dashboard payload; exactly one
// overview is populated.
type DashboardResponse struct {
	Role            string           `json:"role"`
	StudentOverview *StudentOverview `json:"student_overview,omitempty"`
	TeacherOverview *TeacherOverview `json:"teacher_overview,omitempty"`
	HodOverview     *HodOverview     `json:"hod_overview,omitempty"`
}

// OversightFilters narrow the HOD/Admin oversight complaint list.
type OversightFilters struct {
	Status    string
	TeacherID int64
	StudentID int64
}

// OversightResponse is the department-scoped oversight list plus the rosters
// used to populate the teacher/student filters.
type OversightResponse struct {
	Complaints []Complaint `json:"complaints"`
	Teachers   []User      `json:"teachers"`
	Students   []User      `json:"students"`
}

// SweepResult reports one escalation sweep.
type SweepResult struct {
	Escalated int       `json:"escalated"`
	RanAt     time.Time `json:"ran_at"`
}

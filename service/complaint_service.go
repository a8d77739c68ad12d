package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/JaniDhruv/EduResolve/models"
	"github.com/JaniDhruv/EduResolve/policy"
	"github.com/JaniDhruv/EduResolve/repository"
)

// ComplaintService handles complaint business logic. All authorization runs
// through the policy package; the service only orchestrates storage and
// validation around it.
type ComplaintService struct {
	complaintRepo *repository.ComplaintRepository
	userRepo      *repository.UserRepository
	now           func() time.Time
}

// NewComplaintService creates a new complaint service. A nil clock defaults
// to UTC wall time.
func NewComplaintService(
	complaintRepo *repository.ComplaintRepository,
	userRepo *repository.UserRepository,
	now func() time.Time,
) *ComplaintService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &ComplaintService{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		now:           now,
	}
}

// ResolveRecipients returns the eligible assignees for a complaint the actor
// is about to create, grouped for display.
func (s *ComplaintService) ResolveRecipients(actor *models.User) ([]models.RecipientOption, error) {
	candidates, err := s.userRepo.ListUsersByRoles(models.RoleTeacher, models.RoleHOD, models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipient candidates: %w", err)
	}
	return policy.ResolveRecipients(actor, candidates), nil
}

// CreateComplaint validates and stores a new complaint with status New. The
// recipient must be one of the actor's resolved routing targets; an empty
// routing result fails validation here, not in the resolver.
func (s *ComplaintService) CreateComplaint(actor *models.User, req *models.CreateComplaintRequest, attachmentPaths []string) (*models.CreateComplaintResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required: %w", models.ErrValidation)
	}
	if len(title) > models.MaxTitleLength {
		return nil, fmt.Errorf("title exceeds %d characters: %w", models.MaxTitleLength, models.ErrValidation)
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("description is required: %w", models.ErrValidation)
	}
	if len(description) > models.MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds %d characters: %w", models.MaxDescriptionLength, models.ErrValidation)
	}
	if len(req.Category) > models.MaxCategoryLength {
		return nil, fmt.Errorf("category exceeds %d characters: %w", models.MaxCategoryLength, models.ErrValidation)
	}

	options, err := s.ResolveRecipients(actor)
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("no eligible recipient for your role and department: %w", models.ErrValidation)
	}
	eligible := false
	for _, opt := range options {
		if opt.UserID == req.RecipientID {
			eligible = true
			break
		}
	}
	if !eligible {
		return nil, fmt.Errorf("selected recipient is not eligible: %w", models.ErrValidation)
	}

	complaint := &models.Complaint{
		Title:         title,
		Description:   description,
		Category:      req.Category,
		Status:        models.StatusNew,
		SubmittedByID: actor.UserID,
		AssignedToID:  req.RecipientID,
		CreatedAt:     s.now(),
	}

	if err := s.complaintRepo.CreateComplaint(complaint); err != nil {
		return nil, err
	}
	log.Printf("[complaint] created complaint %d by user %d, assigned to %d", complaint.ComplaintID, actor.UserID, req.RecipientID)

	saved := recordAttachments(s.complaintRepo, complaint.ComplaintID, attachmentPaths, s.now())

	message := "Complaint created successfully"
	if saved < len(attachmentPaths) {
		message = fmt.Sprintf("Complaint created; %d of %d attachments could not be saved",
			len(attachmentPaths)-saved, len(attachmentPaths))
	}

	return &models.CreateComplaintResponse{
		ComplaintID:      complaint.ComplaintID,
		Status:           complaint.Status.String(),
		AttachmentsSaved: saved,
		Message:          message,
	}, nil
}

// attachmentStore is the slice of storage attachment recording needs.
type attachmentStore interface {
	CreateAttachment(*models.ComplaintAttachment) error
}

// recordAttachments inserts one row per stored file path and returns how many
// succeeded. A failed insert is logged and does not abort the remaining
// paths; the caller reports the shortfall to the client.
func recordAttachments(store attachmentStore, complaintID int64, paths []string, now time.Time) int {
	saved := 0
	for _, path := range paths {
		attachment := &models.ComplaintAttachment{
			ComplaintID: complaintID,
			FilePath:    path,
			CreatedAt:   now,
		}
		if err := store.CreateAttachment(attachment); err != nil {
			log.Printf("[complaint] failed to record attachment for complaint %d: %v", complaintID, err)
			continue
		}
		saved++
	}
	return saved
}

// ListComplaints returns the complaints the actor may see, applying the
// optional status and origin filters.
func (s *ComplaintService) ListComplaints(actor *models.User, statusFilter, originFilter string) ([]models.Complaint, error) {
	complaints, err := s.complaintRepo.ListComplaints()
	if err != nil {
		return nil, err
	}
	return policy.FilterVisible(actor, complaints, statusFilter, originFilter), nil
}

// GetComplaintDetail returns a single complaint with its comments and
// attachments. Missing ids surface as NotFound before any authorization
// runs; a failed read check surfaces as AccessDenied, not NotFound.
func (s *ComplaintService) GetComplaintDetail(actor *models.User, complaintID int64) (*models.ComplaintDetail, error) {
	complaint, err := s.complaintRepo.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}

	if !policy.CanRead(actor, complaint) {
		return nil, fmt.Errorf("complaint %d: %w", complaintID, models.ErrAccessDenied)
	}

	comments, err := s.complaintRepo.ListComments(complaintID)
	if err != nil {
		return nil, err
	}
	attachments, err := s.complaintRepo.ListAttachments(complaintID)
	if err != nil {
		return nil, err
	}

	statusOptions := make([]string, 0, len(models.AllStatuses()))
	for _, st := range models.AllStatuses() {
		statusOptions = append(statusOptions, st.String())
	}

	return &models.ComplaintDetail{
		Complaint:       complaint,
		Comments:        comments,
		Attachments:     attachments,
		CanUpdateStatus: policy.CanMutateStatus(actor, complaint),
		StatusOptions:   statusOptions,
	}, nil
}

// UpdateStatus applies a status transition after authorization. The token is
// validated first; the transition itself runs under the store's row lock so
// concurrent updates serialize.
func (s *ComplaintService) UpdateStatus(actor *models.User, complaintID int64, req *models.UpdateStatusRequest) (*models.UpdateStatusResponse, error) {
	status, ok := models.ParseStatus(req.NewStatus)
	if !ok {
		return nil, fmt.Errorf("unrecognized status %q: %w", req.NewStatus, models.ErrValidation)
	}

	complaint, err := s.complaintRepo.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}

	if !policy.CanMutateStatus(actor, complaint) {
		return nil, fmt.Errorf("complaint %d: %w", complaintID, models.ErrAccessDenied)
	}

	oldStatus := complaint.Status
	now := s.now()
	updated, err := s.complaintRepo.UpdateComplaintLocked(complaintID, func(c *models.Complaint) {
		policy.ApplyStatusTransition(c, status, now)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[complaint] status of complaint %d changed %s -> %s by user %d", complaintID, oldStatus, updated.Status, actor.UserID)

	return &models.UpdateStatusResponse{
		ComplaintID: complaintID,
		OldStatus:   oldStatus.String(),
		NewStatus:   updated.Status.String(),
	}, nil
}

// AddComment appends a comment to a complaint the actor can read. Read
// access is sufficient; status-mutation rights are not required. The
// complaint's updated_at is touched, status and escalation are not.
func (s *ComplaintService) AddComment(actor *models.User, complaintID int64, req *models.AddCommentRequest) (*models.Comment, error) {
	complaint, err := s.complaintRepo.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}

	if !policy.CanRead(actor, complaint) {
		return nil, fmt.Errorf("complaint %d: %w", complaintID, models.ErrAccessDenied)
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("comment cannot be empty: %w", models.ErrValidation)
	}
	if len(content) > models.MaxCommentLength {
		return nil, fmt.Errorf("comment exceeds %d characters: %w", models.MaxCommentLength, models.ErrValidation)
	}

	comment := &models.Comment{
		ComplaintID: complaintID,
		UserID:      actor.UserID,
		Content:     content,
	}
	if err := s.complaintRepo.AddComment(comment, s.now()); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListForOversight returns the department-scoped complaint list for HOD and
// Admin users, with optional status/teacher/student filters and the rosters
// backing the filter controls.
func (s *ComplaintService) ListForOversight(actor *models.User, filters models.OversightFilters) (*models.OversightResponse, error) {
	complaints, err := s.complaintRepo.ListComplaints()
	if err != nil {
		return nil, err
	}
	visible := policy.FilterVisible(actor, complaints, filters.Status, "")

	if filters.TeacherID != 0 {
		narrowed := visible[:0]
		for _, c := range visible {
			if c.AssignedToID == filters.TeacherID {
				narrowed = append(narrowed, c)
			}
		}
		visible = narrowed
	}
	if filters.StudentID != 0 {
		narrowed := visible[:0]
		for _, c := range visible {
			if c.SubmittedByID == filters.StudentID {
				narrowed = append(narrowed, c)
			}
		}
		visible = narrowed
	}

	teachers, err := s.userRepo.ListUsersByRole(models.RoleTeacher)
	if err != nil {
		return nil, err
	}
	students, err := s.userRepo.ListUsersByRole(models.RoleStudent)
	if err != nil {
		return nil, err
	}

	// HODs see only their own department's rosters; Admins see everyone.
	if actor.Role == models.RoleHOD && actor.DepartmentID != nil {
		teachers = filterByDepartment(teachers, *actor.DepartmentID)
		students = filterByDepartment(students, *actor.DepartmentID)
	}

	return &models.OversightResponse{
		Complaints: visible,
		Teachers:   teachers,
		Students:   students,
	}, nil
}

func filterByDepartment(users []models.User, departmentID int64) []models.User {
	filtered := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.DepartmentID != nil && *u.DepartmentID == departmentID {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

package service

import (
	"math"
	"sort"

	"github.com/JaniDhruv/EduResolve/models"
	"github.com/JaniDhruv/EduResolve/policy"
	"github.com/JaniDhruv/EduResolve/repository"
)

// DashboardService builds role-specific overviews from the visible
// complaint set.
type DashboardService struct {
	complaintRepo *repository.ComplaintRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(complaintRepo *repository.ComplaintRepository) *DashboardService {
	return &DashboardService{complaintRepo: complaintRepo}
}

// Overview assembles the dashboard for the actor's role.
func (s *DashboardService) Overview(actor *models.User) (*models.DashboardResponse, error) {
	complaints, err := s.complaintRepo.ListComplaints()
	if err != nil {
		return nil, err
	}

	resp := &models.DashboardResponse{Role: actor.Role.String()}

	switch actor.Role {
	case models.RoleTeacher:
		resp.TeacherOverview = teacherOverview(actor, complaints)
	case models.RoleHOD, models.RoleAdmin:
		resp.HodOverview = hodOverview(actor, complaints)
	default:
		resp.StudentOverview = studentOverview(actor, complaints)
	}

	return resp, nil
}

func isOpen(s models.ComplaintStatus) bool {
	return s == models.StatusNew || s == models.StatusInProgress || s == models.StatusReopened
}

func isSettled(s models.ComplaintStatus) bool {
	return s == models.StatusResolved || s == models.StatusClosed
}

func studentOverview(actor *models.User, complaints []models.Complaint) *models.StudentOverview {
	own := policy.FilterVisible(actor, complaints, "", "")

	overview := &models.StudentOverview{TotalComplaints: len(own)}
	for _, c := range own {
		if isOpen(c.Status) {
			overview.OpenComplaints++
		}
		if isSettled(c.Status) {
			overview.ResolvedComplaints++
		}
	}
	overview.RecentComplaints = firstN(own, 5)
	return overview
}

func teacherOverview(actor *models.User, complaints []models.Complaint) *models.TeacherOverview {
	// The teacher dashboard counts assigned work only, not own submissions.
	assigned := policy.FilterVisible(actor, complaints, "", policy.OriginAssigned)

	overview := &models.TeacherOverview{}
	pending := make([]models.Complaint, 0, len(assigned))
	for _, c := range assigned {
		switch {
		case c.Status == models.StatusNew:
			overview.NewComplaints++
		case c.Status == models.StatusInProgress || c.Status == models.StatusReopened:
			overview.InProgressComplaints++
		case isSettled(c.Status):
			overview.ResolvedByMe++
		}
		if isOpen(c.Status) {
			pending = append(pending, c)
		}
	}
	overview.PendingComplaints = firstN(pending, 5)
	return overview
}

func hodOverview(actor *models.User, complaints []models.Complaint) *models.HodOverview {
	departmental := policy.FilterVisible(actor, complaints, "", "")

	overview := &models.HodOverview{TotalComplaints: len(departmental)}

	var resolutionHours float64
	var resolvedWithTimestamp int
	escalated := make([]models.Complaint, 0)
	for _, c := range departmental {
		if isSettled(c.Status) {
			overview.ResolvedComplaints++
			if c.UpdatedAt != nil {
				resolutionHours += c.UpdatedAt.Sub(c.CreatedAt).Hours()
				resolvedWithTimestamp++
			}
		}
		if c.IsEscalated {
			escalated = append(escalated, c)
		}
	}
	if resolvedWithTimestamp > 0 {
		overview.AverageResolutionHours = math.Round(resolutionHours/float64(resolvedWithTimestamp)*100) / 100
	}

	sort.SliceStable(escalated, func(i, j int) bool {
		ti := escalated[i].CreatedAt
		if escalated[i].EscalatedAt != nil {
			ti = *escalated[i].EscalatedAt
		}
		tj := escalated[j].CreatedAt
		if escalated[j].EscalatedAt != nil {
			tj = *escalated[j].EscalatedAt
		}
		return ti.After(tj)
	})
	overview.EscalatedComplaints = firstN(escalated, 10)
	overview.RecentComplaints = firstN(departmental, 10)

	return overview
}

func firstN(complaints []models.Complaint, n int) []models.Complaint {
	if len(complaints) > n {
		return complaints[:n]
	}
	return complaints
}

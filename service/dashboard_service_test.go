package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaniDhruv/EduResolve/models"
)

func dashDept(id int64) *int64 { return &id }

func dashUser(id int64, role models.Role, dept *int64) *models.User {
	return &models.User{UserID: id, Role: role, DepartmentID: dept}
}

func dashComplaint(id int64, submitter, assignee *models.User, status models.ComplaintStatus, createdAt time.Time) models.Complaint {
	return models.Complaint{
		ComplaintID:   id,
		Status:        status,
		SubmittedByID: submitter.UserID,
		AssignedToID:  assignee.UserID,
		CreatedAt:     createdAt,
		SubmittedBy:   submitter,
		AssignedTo:    assignee,
	}
}

func TestStudentOverview(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cs := dashDept(1)
	student := dashUser(10, models.RoleStudent, cs)
	other := dashUser(11, models.RoleStudent, cs)
	teacher := dashUser(20, models.RoleTeacher, cs)

	complaints := []models.Complaint{
		dashComplaint(1, student, teacher, models.StatusNew, base),
		dashComplaint(2, student, teacher, models.StatusResolved, base.Add(time.Hour)),
		dashComplaint(3, student, teacher, models.StatusReopened, base.Add(2*time.Hour)),
		dashComplaint(4, other, teacher, models.StatusNew, base.Add(3*time.Hour)),
	}

	overview := studentOverview(student, complaints)

	assert.Equal(t, 3, overview.TotalComplaints)
	assert.Equal(t, 2, overview.OpenComplaints)
	assert.Equal(t, 1, overview.ResolvedComplaints)
	require.Len(t, overview.RecentComplaints, 3)
	assert.Equal(t, int64(3), overview.RecentComplaints[0].ComplaintID)
}

func TestTeacherOverviewCountsAssignedOnly(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cs := dashDept(1)
	student := dashUser(10, models.RoleStudent, cs)
	teacher := dashUser(20, models.RoleTeacher, cs)
	hod := dashUser(30, models.RoleHOD, cs)

	complaints := []models.Complaint{
		dashComplaint(1, student, teacher, models.StatusNew, base),
		dashComplaint(2, student, teacher, models.StatusInProgress, base.Add(time.Hour)),
		dashComplaint(3, student, teacher, models.StatusClosed, base.Add(2*time.Hour)),
		// The teacher's own submission must not count toward assigned work.
		dashComplaint(4, teacher, hod, models.StatusNew, base.Add(3*time.Hour)),
	}

	overview := teacherOverview(teacher, complaints)

	assert.Equal(t, 1, overview.NewComplaints)
	assert.Equal(t, 1, overview.InProgressComplaints)
	assert.Equal(t, 1, overview.ResolvedByMe)
	require.Len(t, overview.PendingComplaints, 2)
}

func TestHodOverview(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cs := dashDept(1)
	student := dashUser(10, models.RoleStudent, cs)
	teacher := dashUser(20, models.RoleTeacher, cs)
	hod := dashUser(30, models.RoleHOD, cs)

	resolvedAt := base.Add(10 * time.Hour)
	resolved := dashComplaint(1, student, teacher, models.StatusResolved, base)
	resolved.UpdatedAt = &resolvedAt

	escalatedAt := base.Add(73 * time.Hour)
	escalated := dashComplaint(2, student, teacher, models.StatusNew, base)
	escalated.IsEscalated = true
	escalated.EscalatedAt = &escalatedAt

	complaints := []models.Complaint{
		resolved,
		escalated,
		dashComplaint(3, student, teacher, models.StatusInProgress, base.Add(time.Hour)),
	}

	overview := hodOverview(hod, complaints)

	assert.Equal(t, 3, overview.TotalComplaints)
	assert.Equal(t, 1, overview.ResolvedComplaints)
	assert.Equal(t, 10.0, overview.AverageResolutionHours)
	require.Len(t, overview.EscalatedComplaints, 1)
	assert.Equal(t, int64(2), overview.EscalatedComplaints[0].ComplaintID)
	assert.Len(t, overview.RecentComplaints, 3)
}

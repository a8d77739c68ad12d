package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JaniDhruv/EduResolve/models"
)

func TestCanRead(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cs, ee := deptPtr(1), deptPtr(2)
	studentCS := testUser(10, models.RoleStudent, cs)
	teacherEE := testUser(21, models.RoleTeacher, ee)
	crossDept := testComplaint(1, studentCS, teacherEE, models.StatusNew, base)

	tests := []struct {
		name  string
		actor *models.User
		want  bool
	}{
		{"submitter reads own complaint", studentCS, true},
		{"assignee reads assigned complaint", teacherEE, true},
		{"admin reads anything", testUser(40, models.RoleAdmin, nil), true},
		{"cs hod reads via submitter department", testUser(30, models.RoleHOD, cs), true},
		{"ee hod reads via assignee department", testUser(31, models.RoleHOD, ee), true},
		{"unrelated hod denied", testUser(32, models.RoleHOD, deptPtr(3)), false},
		{"hod without department denied", testUser(33, models.RoleHOD, nil), false},
		{"unrelated student denied", testUser(11, models.RoleStudent, cs), false},
		{"unrelated teacher denied even in department", testUser(22, models.RoleTeacher, cs), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanRead(tt.actor, &crossDept))
		})
	}
}

func TestCanMutateStatus(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cs := deptPtr(1)
	student := testUser(10, models.RoleStudent, cs)
	teacher := testUser(20, models.RoleTeacher, cs)
	c := testComplaint(1, student, teacher, models.StatusNew, base)

	tests := []struct {
		name  string
		actor *models.User
		want  bool
	}{
		{"admin may mutate", testUser(40, models.RoleAdmin, nil), true},
		{"department hod may mutate", testUser(30, models.RoleHOD, cs), true},
		{"foreign hod denied", testUser(31, models.RoleHOD, deptPtr(2)), false},
		{"assignee teacher may mutate", teacher, true},
		{"non-assignee teacher denied", testUser(21, models.RoleTeacher, cs), false},
		{"submitter student denied on own complaint", student, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutateStatus(tt.actor, &c))
		})
	}
}

func TestReadableWithoutMutable(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cs := deptPtr(1)
	student := testUser(10, models.RoleStudent, cs)
	teacher := testUser(20, models.RoleTeacher, cs)
	c := testComplaint(1, student, teacher, models.StatusNew, base)

	// The submitting student can read but never mutate.
	assert.True(t, CanRead(student, &c))
	assert.False(t, CanMutateStatus(student, &c))
}

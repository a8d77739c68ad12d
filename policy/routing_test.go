package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaniDhruv/EduResolve/models"
)

func namedUser(id int64, first, last string, role models.Role, dept *int64) models.User {
	return models.User{
		UserID:       id,
		FirstName:    first,
		LastName:     last,
		Role:         role,
		DepartmentID: dept,
	}
}

func TestResolveRecipientsStudent(t *testing.T) {
	cs, ee := deptPtr(1), deptPtr(2)

	candidates := []models.User{
		namedUser(20, "Asha", "Rao", models.RoleTeacher, cs),
		namedUser(21, "Zane", "Iyer", models.RoleTeacher, cs),
		namedUser(22, "Meera", "Nair", models.RoleTeacher, ee),
		namedUser(30, "Kiran", "Shah", models.RoleHOD, cs),
		namedUser(31, "Leela", "Das", models.RoleHOD, ee),
		namedUser(40, "Omar", "Ali", models.RoleAdmin, nil),
	}

	t.Run("student with department gets same-department teachers and hod", func(t *testing.T) {
		student := testUser(10, models.RoleStudent, cs)
		options := ResolveRecipients(student, candidates)

		require.Len(t, options, 3)
		// Teachers come first, sorted by display name, then HODs.
		assert.Equal(t, int64(20), options[0].UserID)
		assert.Equal(t, GroupTeachers, options[0].Group)
		assert.Equal(t, int64(21), options[1].UserID)
		assert.Equal(t, GroupTeachers, options[1].Group)
		assert.Equal(t, int64(30), options[2].UserID)
		assert.Equal(t, GroupHODs, options[2].Group)
	})

	t.Run("student without department gets no teachers, every hod", func(t *testing.T) {
		student := testUser(10, models.RoleStudent, nil)
		options := ResolveRecipients(student, candidates)

		require.Len(t, options, 2)
		assert.Equal(t, GroupHODs, options[0].Group)
		assert.Equal(t, GroupHODs, options[1].Group)
	})
}

func TestResolveRecipientsTeacher(t *testing.T) {
	cs, ee := deptPtr(1), deptPtr(2)

	candidates := []models.User{
		namedUser(21, "Zane", "Iyer", models.RoleTeacher, cs),
		namedUser(30, "Kiran", "Shah", models.RoleHOD, cs),
		namedUser(31, "Leela", "Das", models.RoleHOD, ee),
		namedUser(40, "Omar", "Ali", models.RoleAdmin, nil),
	}

	teacher := testUser(20, models.RoleTeacher, cs)
	options := ResolveRecipients(teacher, candidates)

	require.Len(t, options, 1)
	assert.Equal(t, int64(30), options[0].UserID)
	assert.Equal(t, GroupHODs, options[0].Group)
}

func TestResolveRecipientsHOD(t *testing.T) {
	candidates := []models.User{
		namedUser(30, "Kiran", "Shah", models.RoleHOD, deptPtr(1)),
		namedUser(40, "Omar", "Ali", models.RoleAdmin, nil),
		namedUser(41, "Bela", "Roy", models.RoleAdmin, nil),
	}

	hod := testUser(30, models.RoleHOD, deptPtr(1))
	options := ResolveRecipients(hod, candidates)

	require.Len(t, options, 2)
	// Sorted by display name within the group.
	assert.Equal(t, int64(41), options[0].UserID)
	assert.Equal(t, int64(40), options[1].UserID)
	for _, opt := range options {
		assert.Equal(t, GroupAdmins, opt.Group)
	}
}

func TestResolveRecipientsAdmin(t *testing.T) {
	candidates := []models.User{
		namedUser(40, "Omar", "Ali", models.RoleAdmin, nil),
		namedUser(30, "Kiran", "Shah", models.RoleHOD, deptPtr(1)),
	}

	admin := testUser(40, models.RoleAdmin, nil)
	assert.Empty(t, ResolveRecipients(admin, candidates))
}

func TestResolveRecipientsDedup(t *testing.T) {
	cs := deptPtr(1)
	duplicate := namedUser(30, "Kiran", "Shah", models.RoleHOD, cs)

	student := testUser(10, models.RoleStudent, cs)
	options := ResolveRecipients(student, []models.User{duplicate, duplicate})

	require.Len(t, options, 1)
	assert.Equal(t, int64(30), options[0].UserID)
}

func TestResolveRecipientsGroupOrder(t *testing.T) {
	cs := deptPtr(1)

	// Display names chosen so an alphabetical sort across groups would
	// scramble them; the group order must win.
	candidates := []models.User{
		namedUser(30, "Aaron", "Abel", models.RoleHOD, cs),
		namedUser(20, "Zoya", "Zutshi", models.RoleTeacher, cs),
	}

	student := testUser(10, models.RoleStudent, cs)
	options := ResolveRecipients(student, candidates)

	require.Len(t, options, 2)
	assert.Equal(t, GroupTeachers, options[0].Group)
	assert.Equal(t, GroupHODs, options[1].Group)
}

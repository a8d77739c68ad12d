package policy

import "github.com/JaniDhruv/EduResolve/models"

// CanRead decides direct read access to a single complaint. It is
// independent of list visibility and of CanMutateStatus: a complaint can be
// readable without being mutable by the same actor.
func CanRead(actor *models.User, c *models.Complaint) bool {
	if actor.Role == models.RoleAdmin {
		return true
	}

	if c.SubmittedByID == actor.UserID || c.AssignedToID == actor.UserID {
		return true
	}

	if actor.Role == models.RoleHOD {
		return departmentMatches(c.SubmitterDepartmentID(), actor.DepartmentID) ||
			departmentMatches(c.AssigneeDepartmentID(), actor.DepartmentID)
	}

	return false
}

// CanMutateStatus decides whether the actor may change the complaint's
// status. Students never may, not even for their own submissions.
func CanMutateStatus(actor *models.User, c *models.Complaint) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleHOD:
		return departmentMatches(c.SubmitterDepartmentID(), actor.DepartmentID) ||
			departmentMatches(c.AssigneeDepartmentID(), actor.DepartmentID)
	case models.RoleTeacher:
		return c.AssignedToID == actor.UserID
	default:
		return false
	}
}

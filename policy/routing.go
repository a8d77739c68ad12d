package policy

import (
	"sort"

	"github.com/JaniDhruv/EduResolve/models"
)

// Display group labels for recipient options.
const (
	GroupTeachers = "Teachers"
	GroupHODs     = "Heads of Department"
	GroupAdmins   = "Administrators"
)

// groupRank fixes the display order: Teachers before HODs before Admins.
var groupRank = map[string]int{
	GroupTeachers: 0,
	GroupHODs:     1,
	GroupAdmins:   2,
}

// ResolveRecipients enumerates the eligible assignees for a complaint the
// actor is about to create, from the given candidate users.
//
// Routing table:
//   - Student → Teachers of the same department, plus HODs of the same
//     department (any HOD when the student has no department).
//   - Teacher → HODs of the same department (any when no department).
//   - HOD → Admins.
//   - Admin → nothing; Admins do not submit complaints.
//
// The result is deduplicated by user id, grouped Teachers → HODs → Admins and
// sorted by display name within each group. An empty result is not an error;
// the create operation fails validation at the service boundary instead.
func ResolveRecipients(actor *models.User, candidates []models.User) []models.RecipientOption {
	options := make([]models.RecipientOption, 0)

	add := func(u *models.User, group string) {
		options = append(options, models.RecipientOption{
			UserID:      u.UserID,
			DisplayName: u.DisplayName(),
			Group:       group,
		})
	}

	switch actor.Role {
	case models.RoleStudent:
		for i := range candidates {
			u := &candidates[i]
			switch u.Role {
			case models.RoleTeacher:
				// Teachers are offered only when the student has a department.
				if departmentMatches(u.DepartmentID, actor.DepartmentID) {
					add(u, GroupTeachers)
				}
			case models.RoleHOD:
				if actor.DepartmentID == nil || departmentMatches(u.DepartmentID, actor.DepartmentID) {
					add(u, GroupHODs)
				}
			}
		}
	case models.RoleTeacher:
		for i := range candidates {
			u := &candidates[i]
			if u.Role == models.RoleHOD {
				if actor.DepartmentID == nil || departmentMatches(u.DepartmentID, actor.DepartmentID) {
					add(u, GroupHODs)
				}
			}
		}
	case models.RoleHOD:
		for i := range candidates {
			u := &candidates[i]
			if u.Role == models.RoleAdmin {
				add(u, GroupAdmins)
			}
		}
	default:
		// Admins (and unrecognized roles) have no routing targets.
	}

	seen := make(map[int64]bool, len(options))
	deduped := options[:0]
	for _, opt := range options {
		if seen[opt.UserID] {
			continue
		}
		seen[opt.UserID] = true
		deduped = append(deduped, opt)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		if deduped[i].Group != deduped[j].Group {
			return groupRank[deduped[i].Group] < groupRank[deduped[j].Group]
		}
		return deduped[i].DisplayName < deduped[j].DisplayName
	})

	return deduped
}

// Package policy contains the pure authorization core: list visibility,
// per-complaint access checks, recipient routing and the status lifecycle.
// Nothing here touches storage; functions are safe for concurrent use.
package policy

import (
	"sort"
	"strings"

	"github.com/JaniDhruv/EduResolve/models"
)

// Origin filter tokens for the Teacher list refinement.
const (
	OriginAssigned  = "assigned"
	OriginSubmitted = "submitted"
)

// FilterVisible returns the subset of complaints the actor may list, newest
// first. The status filter is applied after role filtering and ignored when
// the token is unrecognized. The origin filter narrows the Teacher base set
// only; other roles and unrecognized tokens leave the result unchanged.
func FilterVisible(actor *models.User, complaints []models.Complaint, statusFilter, originFilter string) []models.Complaint {
	visible := make([]models.Complaint, 0, len(complaints))
	for i := range complaints {
		c := &complaints[i]
		if !listVisible(actor, c) {
			continue
		}
		if actor.Role == models.RoleTeacher && originFilter != "" {
			if strings.EqualFold(originFilter, OriginAssigned) {
				if !(c.AssignedToID == actor.UserID && c.SubmittedByID != actor.UserID) {
					continue
				}
			} else if strings.EqualFold(originFilter, OriginSubmitted) {
				if c.SubmittedByID != actor.UserID {
					continue
				}
			}
		}
		visible = append(visible, complaints[i])
	}

	if status, ok := models.ParseStatus(statusFilter); ok && statusFilter != "" {
		filtered := visible[:0]
		for _, c := range visible {
			if c.Status == status {
				filtered = append(filtered, c)
			}
		}
		visible = filtered
	}

	// Newest first; ties resolved by reverse insertion order.
	sort.SliceStable(visible, func(i, j int) bool {
		if !visible[i].CreatedAt.Equal(visible[j].CreatedAt) {
			return visible[i].CreatedAt.After(visible[j].CreatedAt)
		}
		return visible[i].ComplaintID > visible[j].ComplaintID
	})

	return visible
}

// listVisible is the role base filter for listing.
func listVisible(actor *models.User, c *models.Complaint) bool {
	switch actor.Role {
	case models.RoleAdmin:
		return true
	case models.RoleHOD:
		return departmentMatches(c.SubmitterDepartmentID(), actor.DepartmentID) ||
			departmentMatches(c.AssigneeDepartmentID(), actor.DepartmentID)
	case models.RoleTeacher:
		return c.AssignedToID == actor.UserID || c.SubmittedByID == actor.UserID
	default:
		// Students, and any actor without a recognized role, see only their
		// own submissions.
		return c.SubmittedByID == actor.UserID
	}
}

// departmentMatches reports whether both departments are set and equal. A nil
// department never matches, including nil against nil.
func departmentMatches(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}

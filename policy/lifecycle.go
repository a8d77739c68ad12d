package policy

import (
	"time"

	"github.com/JaniDhruv/EduResolve/models"
)

// ApplyStatusTransition applies a requested status to the complaint in place.
// Any status is accepted as a target from any current status; there is no
// forbidden-transition table.
//
// Every transition stamps UpdatedAt. Leaving New additionally clears the
// escalation flag and timestamp, keeping the invariant that only New
// complaints can be escalated.
func ApplyStatusTransition(c *models.Complaint, status models.ComplaintStatus, now time.Time) {
	c.Status = status
	c.UpdatedAt = &now

	if status != models.StatusNew {
		c.IsEscalated = false
		c.EscalatedAt = nil
	}
}

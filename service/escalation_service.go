package service

import (
	"log"
	"time"

	"github.com/JaniDhruv/EduResolve/models"
)

// DefaultStaleAfter is how long a complaint may sit in New before the sweep
// flags it.
const DefaultStaleAfter = 72 * time.Hour

// StaleComplaintStore is the slice of storage the sweep needs: a single
// transactional batch update of every complaint matching the stale
// predicate.
type StaleComplaintStore interface {
	EscalateStale(status models.ComplaintStatus, threshold, now time.Time) (int64, error)
}

// EscalationService flags complaints that have sat in New, unescalated, past
// the stale threshold. It carries no actor context; the sweep is a system
// action.
type EscalationService struct {
	store      StaleComplaintStore
	staleAfter time.Duration
	now        func() time.Time
}

// NewEscalationService creates an escalation service. A non-positive
// staleAfter falls back to DefaultStaleAfter; a nil clock defaults to UTC
// wall time.
func NewEscalationService(store StaleComplaintStore, staleAfter time.Duration, now func() time.Time) *EscalationService {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &EscalationService{
		store:      store,
		staleAfter: staleAfter,
		now:        now,
	}
}

// RunOnce performs a single sweep. The batch commits atomically in the
// store: a failed run flags nothing. Running twice in succession flags
// nothing extra; the predicate excludes already-escalated complaints.
func (s *EscalationService) RunOnce() (models.SweepResult, error) {
	now := s.now()
	threshold := now.Add(-s.staleAfter)

	count, err := s.store.EscalateStale(models.StatusNew, threshold, now)
	if err != nil {
		return models.SweepResult{}, err
	}

	if count == 0 {
		log.Printf("[ESCALATION] sweep completed, no complaints required escalation")
	} else {
		log.Printf("[ESCALATION] escalated %d complaints older than %v", count, s.staleAfter)
	}

	return models.SweepResult{Escalated: int(count), RanAt: now}, nil
}

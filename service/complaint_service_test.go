package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JaniDhruv/EduResolve/models"
)

// Validation runs before any storage access, so these paths are exercised
// with nil repositories.

func TestCreateComplaintValidation(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewComplaintService(nil, nil, func() time.Time { return fixed })
	actor := &models.User{UserID: 10, Role: models.RoleStudent}

	tests := []struct {
		name string
		req  models.CreateComplaintRequest
	}{
		{"empty title", models.CreateComplaintRequest{Description: "d"}},
		{"whitespace title", models.CreateComplaintRequest{Title: "   ", Description: "d"}},
		{"oversize title", models.CreateComplaintRequest{Title: strings.Repeat("x", models.MaxTitleLength+1), Description: "d"}},
		{"empty description", models.CreateComplaintRequest{Title: "t"}},
		{"oversize description", models.CreateComplaintRequest{Title: "t", Description: strings.Repeat("x", models.MaxDescriptionLength+1)}},
		{"oversize category", models.CreateComplaintRequest{Title: "t", Description: "d", Category: strings.Repeat("x", models.MaxCategoryLength+1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateComplaint(actor, &tt.req, nil)
			assert.True(t, errors.Is(err, models.ErrValidation), "expected validation error, got %v", err)
		})
	}
}

// flakyAttachmentStore fails inserts for selected paths.
type flakyAttachmentStore struct {
	failOn map[string]bool
	calls  int
}

func (f *flakyAttachmentStore) CreateAttachment(a *models.ComplaintAttachment) error {
	f.calls++
	if f.failOn[a.FilePath] {
		return errors.New("insert failed")
	}
	return nil
}

func TestRecordAttachmentsCountsFailures(t *testing.T) {
	store := &flakyAttachmentStore{failOn: map[string]bool{"/uploads/b.png": true}}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	saved := recordAttachments(store, 7, []string{"/uploads/a.png", "/uploads/b.png", "/uploads/c.png"}, now)

	// One failure does not abort the rest, and the shortfall is visible to
	// the caller instead of silently swallowed.
	assert.Equal(t, 2, saved)
	assert.Equal(t, 3, store.calls)
}

func TestUpdateStatusRejectsUnknownToken(t *testing.T) {
	svc := NewComplaintService(nil, nil, nil)
	actor := &models.User{UserID: 40, Role: models.RoleAdmin}

	_, err := svc.UpdateStatus(actor, 1, &models.UpdateStatusRequest{NewStatus: "Escalated"})
	assert.True(t, errors.Is(err, models.ErrValidation))
}

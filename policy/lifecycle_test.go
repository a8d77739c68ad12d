package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaniDhruv/EduResolve/models"
)

func TestApplyStatusTransition(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	now := created.Add(80 * time.Hour)

	t.Run("leaving new clears escalation", func(t *testing.T) {
		escalatedAt := created.Add(73 * time.Hour)
		c := models.Complaint{
			Status:      models.StatusNew,
			IsEscalated: true,
			EscalatedAt: &escalatedAt,
			CreatedAt:   created,
		}

		ApplyStatusTransition(&c, models.StatusInProgress, now)

		assert.Equal(t, models.StatusInProgress, c.Status)
		assert.False(t, c.IsEscalated)
		assert.Nil(t, c.EscalatedAt)
		require.NotNil(t, c.UpdatedAt)
		assert.Equal(t, now, *c.UpdatedAt)
	})

	t.Run("staying new keeps escalation", func(t *testing.T) {
		escalatedAt := created.Add(73 * time.Hour)
		c := models.Complaint{
			Status:      models.StatusNew,
			IsEscalated: true,
			EscalatedAt: &escalatedAt,
			CreatedAt:   created,
		}

		ApplyStatusTransition(&c, models.StatusNew, now)

		assert.True(t, c.IsEscalated)
		assert.NotNil(t, c.EscalatedAt)
		require.NotNil(t, c.UpdatedAt)
	})

	t.Run("any transition is allowed", func(t *testing.T) {
		c := models.Complaint{Status: models.StatusClosed, CreatedAt: created}

		ApplyStatusTransition(&c, models.StatusReopened, now)
		assert.Equal(t, models.StatusReopened, c.Status)

		ApplyStatusTransition(&c, models.StatusNew, now)
		assert.Equal(t, models.StatusNew, c.Status)
	})
}

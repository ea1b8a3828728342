//go:build unit

package slot_test

import (
	"testing"
	"time"

	"appointment-booking/internal/domain/slot"
	"appointment-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	t.Run("created unbooked", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.False(t, s.Booked())
	})

	t.Run("requires a provider", func(t *testing.T) {
		_, err := builder.NewSlotBuilder().WithProviderID(uuid.Nil).BuildDomain()
		assert.ErrorIs(t, err, slot.ErrProviderRequired)
	})

	t.Run("requires a time", func(t *testing.T) {
		_, err := builder.NewSlotBuilder().WithAvailableAt(time.Time{}).BuildDomain()
		assert.ErrorIs(t, err, slot.ErrTimeRequired)
	})
}

func TestSlotBooking(t *testing.T) {
	t.Run("mark booked once", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, s.MarkBooked())
		assert.True(t, s.Booked())

		assert.ErrorIs(t, s.MarkBooked(), slot.ErrAlreadyBooked)
	})

	t.Run("release is idempotent", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, s.MarkBooked())

		s.Release()
		assert.False(t, s.Booked())

		s.Release()
		assert.False(t, s.Booked())
	})

	t.Run("released slot can be booked again", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, s.MarkBooked())
		s.Release()
		require.NoError(t, s.MarkBooked())
		assert.True(t, s.Booked())
	})
}

func TestSlotReschedule(t *testing.T) {
	t.Run("preserves booked flag", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, s.MarkBooked())

		newTime := s.AvailableAt().Add(24 * time.Hour)
		require.NoError(t, s.Reschedule(newTime))

		assert.Equal(t, newTime, s.AvailableAt())
		assert.True(t, s.Booked())
	})

	t.Run("rejects zero time", func(t *testing.T) {
		s, err := builder.NewSlotBuilder().BuildDomain()
		require.NoError(t, err)

		assert.ErrorIs(t, s.Reschedule(time.Time{}), slot.ErrTimeRequired)
	})
}

func TestSlotOwnership(t *testing.T) {
	providerID := uuid.New()
	s, err := builder.NewSlotBuilder().WithProviderID(providerID).BuildDomain()
	require.NoError(t, err)

	assert.True(t, s.IsOwnedBy(providerID))
	assert.False(t, s.IsOwnedBy(uuid.New()))
}

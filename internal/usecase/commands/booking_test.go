//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"appointment-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	store   *fakeStore
	booking commands.BookingCommands
}

func newBookingFixture() *bookingFixture {
	store := newFakeStore()
	return &bookingFixture{
		store:   store,
		booking: commands.NewBookingCommands(newFakeUoW(store), &fakeAppointmentReadStore{store: store}),
	}
}

func TestBookAppointment(t *testing.T) {
	ctx := context.Background()
	slotTime := time.Now().Add(48 * time.Hour).Truncate(time.Second)

	t.Run("slot-backed booking marks the slot and starts pending", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		slotID := f.store.addSlot(providerID, slotTime, false)

		view, err := f.booking.BookAppointment(ctx, commands.BookAppointmentParams{
			UserID:     uuid.New(),
			ProviderID: providerID,
			SlotID:     &slotID,
		})
		require.NoError(t, err)

		assert.Equal(t, "PENDING", view.Status)
		require.NotNil(t, view.SlotID)
		assert.Equal(t, slotID, *view.SlotID)
		// scheduled time defaults to the slot time
		assert.True(t, view.ScheduledAt.Equal(slotTime))
		assert.True(t, f.store.slots[slotID].Booked)
	})

	t.Run("explicit scheduled time wins over slot time", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		slotID := f.store.addSlot(providerID, slotTime, false)
		explicit := slotTime.Add(30 * time.Minute)

		view, err := f.booking.BookAppointment(ctx, commands.BookAppointmentParams{
			UserID:      uuid.New(),
			ProviderID:  providerID,
			SlotID:      &slotID,
			ScheduledAt: explicit,
		})
		require.NoError(t, err)
		assert.True(t, view.ScheduledAt.Equal(explicit))
	})

	t.Run("direct booking without a slot", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")

		view, err := f.booking.BookAppointment(ctx, commands.BookAppointmentParams{
			UserID:      uuid.New(),
			ProviderID:  providerID,
			ScheduledAt: slotTime,
		})
		require.NoError(t, err)
		assert.Nil(t, view.SlotID)
		assert.Equal(t, "PENDING", view.Status)
	})

	t.Run("error mapping", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		bookedSlotID := f.store.addSlot(providerID, slotTime, true)
		missingSlotID := uuid.New()

		cases := []struct {
			name   string
			params commands.BookAppointmentParams
			errIs  error
		}{
			{
				name: "unknown provider",
				params: commands.BookAppointmentParams{
					UserID:      uuid.New(),
					ProviderID:  uuid.New(),
					ScheduledAt: slotTime,
				},
				errIs: commands.ErrProviderNotFound,
			},
			{
				name: "unknown slot",
				params: commands.BookAppointmentParams{
					UserID:     uuid.New(),
					ProviderID: providerID,
					SlotID:     &missingSlotID,
				},
				errIs: commands.ErrSlotNotFound,
			},
			{
				name: "already booked slot",
				params: commands.BookAppointmentParams{
					UserID:     uuid.New(),
					ProviderID: providerID,
					SlotID:     &bookedSlotID,
				},
				errIs: commands.ErrSlotAlreadyBooked,
			},
			{
				name: "slot required but absent",
				params: commands.BookAppointmentParams{
					UserID:      uuid.New(),
					ProviderID:  providerID,
					ScheduledAt: slotTime,
					RequireSlot: true,
				},
				errIs: commands.ErrSlotRequired,
			},
			{
				name: "no slot and no time",
				params: commands.BookAppointmentParams{
					UserID:     uuid.New(),
					ProviderID: providerID,
				},
				errIs: commands.ErrDomainValidation,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := f.booking.BookAppointment(ctx, tc.params)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("failed booking does not leave the slot flipped", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		slotID := f.store.addSlot(providerID, slotTime, true)

		_, err := f.booking.BookAppointment(ctx, commands.BookAppointmentParams{
			UserID:     uuid.New(),
			ProviderID: providerID,
			SlotID:     &slotID,
		})
		require.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)
		assert.Empty(t, f.store.appointments)
	})
}

func TestBookAppointmentConcurrency(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture()
	providerID := f.store.addProvider("Dr. Example")
	slotID := f.store.addSlot(providerID, time.Now().Add(48*time.Hour), false)

	const attempts = 10

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.booking.BookAppointment(ctx, commands.BookAppointmentParams{
				UserID:     uuid.New(),
				ProviderID: providerID,
				SlotID:     &slotID,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, commands.ErrSlotAlreadyBooked):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes, "exactly one booking must win the slot")
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, f.store.appointments, 1)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	ctx := context.Background()
	slotTime := time.Now().Add(48 * time.Hour)

	book := func(t *testing.T, f *bookingFixture, providerID, slotID uuid.UUID) uuid.UUID {
		t.Helper()
		view, err := f.booking.BookAppointment(ctx, commands.BookAppointmentParams{
			UserID:     uuid.New(),
			ProviderID: providerID,
			SlotID:     &slotID,
		})
		require.NoError(t, err)
		return view.ID
	}

	t.Run("confirm keeps the slot booked", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		slotID := f.store.addSlot(providerID, slotTime, false)
		id := book(t, f, providerID, slotID)

		view, err := f.booking.UpdateAppointmentStatus(ctx, id, "CONFIRMED")
		require.NoError(t, err)
		assert.Equal(t, "CONFIRMED", view.Status)
		assert.True(t, f.store.slots[slotID].Booked)
	})

	t.Run("cancel releases the slot", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		slotID := f.store.addSlot(providerID, slotTime, false)
		id := book(t, f, providerID, slotID)

		view, err := f.booking.UpdateAppointmentStatus(ctx, id, "CANCELLED")
		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", view.Status)
		assert.False(t, f.store.slots[slotID].Booked)
	})

	t.Run("alias status also cancels and releases", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		slotID := f.store.addSlot(providerID, slotTime, false)
		id := book(t, f, providerID, slotID)

		_, err := f.booking.UpdateAppointmentStatus(ctx, id, "cancelled")
		require.NoError(t, err)
		assert.False(t, f.store.slots[slotID].Booked)
	})

	t.Run("re-cancel is a no-op and does not re-release", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		slotID := f.store.addSlot(providerID, slotTime, false)
		id := book(t, f, providerID, slotID)

		_, err := f.booking.UpdateAppointmentStatus(ctx, id, "CANCELLED")
		require.NoError(t, err)

		// Another booking takes the freed slot.
		_, err = f.booking.BookAppointment(ctx, commands.BookAppointmentParams{
			UserID:     uuid.New(),
			ProviderID: providerID,
			SlotID:     &slotID,
		})
		require.NoError(t, err)

		// Re-cancelling the first appointment must not free the slot again.
		view, err := f.booking.UpdateAppointmentStatus(ctx, id, "CANCELLED")
		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", view.Status)
		assert.True(t, f.store.slots[slotID].Booked)
	})

	t.Run("book cancel rebook round trip", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		slotID := f.store.addSlot(providerID, slotTime, false)
		id := book(t, f, providerID, slotID)

		_, err := f.booking.UpdateAppointmentStatus(ctx, id, "CANCELLED")
		require.NoError(t, err)

		view, err := f.booking.BookAppointment(ctx, commands.BookAppointmentParams{
			UserID:     uuid.New(),
			ProviderID: providerID,
			SlotID:     &slotID,
		})
		require.NoError(t, err)
		assert.Equal(t, "PENDING", view.Status)
		assert.True(t, f.store.slots[slotID].Booked)
	})

	t.Run("error mapping", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		slotID := f.store.addSlot(providerID, slotTime, false)
		id := book(t, f, providerID, slotID)

		_, err := f.booking.UpdateAppointmentStatus(ctx, uuid.New(), "CONFIRMED")
		assert.ErrorIs(t, err, commands.ErrAppointmentNotFound)

		_, err = f.booking.UpdateAppointmentStatus(ctx, id, "NONSENSE")
		assert.ErrorIs(t, err, commands.ErrInvalidStatus)

		_, err = f.booking.UpdateAppointmentStatus(ctx, id, "CONFIRMED")
		require.NoError(t, err)

		_, err = f.booking.UpdateAppointmentStatus(ctx, id, "PENDING")
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}

func TestDeleteAppointment(t *testing.T) {
	ctx := context.Background()
	slotTime := time.Now().Add(48 * time.Hour)

	t.Run("delete releases the bound slot", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		slotID := f.store.addSlot(providerID, slotTime, false)

		view, err := f.booking.BookAppointment(ctx, commands.BookAppointmentParams{
			UserID:     uuid.New(),
			ProviderID: providerID,
			SlotID:     &slotID,
		})
		require.NoError(t, err)

		require.NoError(t, f.booking.DeleteAppointment(ctx, view.ID))
		assert.False(t, f.store.slots[slotID].Booked)
		assert.Empty(t, f.store.appointments)
	})

	t.Run("deleting a cancelled appointment keeps a rebooked slot held", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		slotID := f.store.addSlot(providerID, slotTime, false)

		first, err := f.booking.BookAppointment(ctx, commands.BookAppointmentParams{
			UserID:     uuid.New(),
			ProviderID: providerID,
			SlotID:     &slotID,
		})
		require.NoError(t, err)

		_, err = f.booking.UpdateAppointmentStatus(ctx, first.ID, "CANCELLED")
		require.NoError(t, err)

		second, err := f.booking.BookAppointment(ctx, commands.BookAppointmentParams{
			UserID:     uuid.New(),
			ProviderID: providerID,
			SlotID:     &slotID,
		})
		require.NoError(t, err)

		require.NoError(t, f.booking.DeleteAppointment(ctx, first.ID))

		// the slot now belongs to the second appointment and must stay held
		assert.True(t, f.store.slots[slotID].Booked)
		assert.Contains(t, f.store.appointments, second.ID)
	})

	t.Run("delete without a slot", func(t *testing.T) {
		f := newBookingFixture()
		providerID := f.store.addProvider("Dr. Example")
		id := f.store.addAppointment(uuid.New(), providerID, nil, slotTime, "PENDING")

		require.NoError(t, f.booking.DeleteAppointment(ctx, id))
	})

	t.Run("missing appointment", func(t *testing.T) {
		f := newBookingFixture()
		err := f.booking.DeleteAppointment(ctx, uuid.New())
		assert.ErrorIs(t, err, commands.ErrAppointmentNotFound)
	})
}

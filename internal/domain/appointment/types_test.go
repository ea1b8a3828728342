//go:build unit

package appointment_test

import (
	"testing"

	"appointment-booking/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  appointment.Status
		errIs error
	}{
		{name: "pending", input: "PENDING", want: appointment.StatusPending},
		{name: "confirmed", input: "CONFIRMED", want: appointment.StatusConfirmed},
		{name: "cancelled", input: "CANCELLED", want: appointment.StatusCancelled},
		{name: "lowercase accepted", input: "confirmed", want: appointment.StatusConfirmed},
		{name: "mixed case accepted", input: "Cancelled", want: appointment.StatusCancelled},
		{name: "surrounding spaces trimmed", input: "  PENDING  ", want: appointment.StatusPending},
		{name: "scheduled alias maps to pending", input: "SCHEDULED", want: appointment.StatusPending},
		{name: "upcoming alias maps to pending", input: "upcoming", want: appointment.StatusPending},
		{name: "unknown rejected", input: "DONE", errIs: appointment.ErrUnknownStatus},
		{name: "empty rejected", input: "", errIs: appointment.ErrUnknownStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := appointment.ParseStatus(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatusTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    appointment.Status
		to      appointment.Status
		changed bool
		errIs   error
	}{
		{name: "pending to confirmed", from: appointment.StatusPending, to: appointment.StatusConfirmed, changed: true},
		{name: "pending to cancelled", from: appointment.StatusPending, to: appointment.StatusCancelled, changed: true},
		{name: "confirmed to cancelled", from: appointment.StatusConfirmed, to: appointment.StatusCancelled, changed: true},
		{name: "confirmed back to pending rejected", from: appointment.StatusConfirmed, to: appointment.StatusPending, errIs: appointment.ErrInvalidTransition},
		{name: "cancelled to pending rejected", from: appointment.StatusCancelled, to: appointment.StatusPending, errIs: appointment.ErrInvalidTransition},
		{name: "cancelled to confirmed rejected", from: appointment.StatusCancelled, to: appointment.StatusConfirmed, errIs: appointment.ErrInvalidTransition},
		{name: "pending to pending is a no-op", from: appointment.StatusPending, to: appointment.StatusPending},
		{name: "confirmed to confirmed is a no-op", from: appointment.StatusConfirmed, to: appointment.StatusConfirmed},
		{name: "cancelled to cancelled is a no-op", from: appointment.StatusCancelled, to: appointment.StatusCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			changed, err := tc.from.TransitionTo(tc.to)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.False(t, changed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.changed, changed)
		})
	}
}

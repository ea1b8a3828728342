//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestProvider(t *testing.T, db DBLike, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	providerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO providers (id, user_id, name, specialty, bio) VALUES ($1, $2, $3, '', '') ON CONFLICT (user_id) DO NOTHING",
		providerID, userID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM providers WHERE user_id = $1", userID).Scan(&providerID)
	}

	return providerID
}

func CreateTestSlot(t *testing.T, db DBLike, providerID uuid.UUID, availableAt time.Time, booked bool) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO slots (id, provider_id, available_at, booked) VALUES ($1, $2, $3, $4)",
		slotID, providerID, availableAt, booked)
	require.NoError(t, err)

	return slotID
}

func CreateTestAppointment(t *testing.T, db DBLike, userID, providerID uuid.UUID, slotID *uuid.UUID, scheduledAt time.Time, status string) uuid.UUID {
	t.Helper()

	appointmentID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO appointments (id, user_id, provider_id, slot_id, scheduled_at, status) VALUES ($1, $2, $3, $4, $5, $6)",
		appointmentID, userID, providerID, slotID, scheduledAt, status)
	require.NoError(t, err)

	return appointmentID
}

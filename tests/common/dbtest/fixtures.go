//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, role) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestSpace(t *testing.T, db DBLike, ownerID uuid.UUID, name string, pricePerDay int64, gatewayAccount *string) uuid.UUID {
	t.Helper()

	spaceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO spaces (id, owner_id, name, price_per_day, owner_gateway_account) VALUES ($1, $2, $3, $4, $5)",
		spaceID, ownerID, name, pricePerDay, gatewayAccount)
	require.NoError(t, err)

	return spaceID
}

// truncates all tables so each subtest starts from a clean slate
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		TRUNCATE calendar_jobs, payment_attempts, reservations, booking_requests, spaces, users CASCADE;
	`)
	return err
}

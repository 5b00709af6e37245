package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberwood/stay/internal/booking"
	"github.com/emberwood/stay/internal/logger"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	return New(Config{L: logger.New(logger.Config{Level: "error", File: ""})})
}

func TestLoadEmpty(t *testing.T) {
	db := newTestDB(t)

	got, err := db.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	want := []booking.Booking{
		{
			ID:        "bk-1",
			RoomID:    "1",
			CheckIn:   time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:  time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC),
			Status:    booking.StatusConfirmed,
			CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, db.Save(ctx, want))

	got, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveOverwrites(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Save(ctx, []booking.Booking{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, db.Save(ctx, nil))

	got, err := db.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

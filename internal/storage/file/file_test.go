package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberwood/stay/internal/booking"
	"github.com/emberwood/stay/internal/logger"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bookings.json")

	store, err := New(Config{
		L:    logger.New(logger.Config{Level: "error", File: ""}),
		Path: path,
	})
	require.NoError(t, err)

	return store, path
}

func sampleBookings() []booking.Booking {
	return []booking.Booking{
		{
			ID:             "bk-1",
			UserID:         booking.DefaultUserID,
			RoomID:         "1",
			RoomName:       "Deluxe King Room",
			RoomImage:      "https://example.com/1.jpeg",
			RoomPrice:      199,
			CheckIn:        time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:       time.Date(2026, 6, 13, 0, 0, 0, 0, time.UTC),
			GuestName:      "Ada Lovelace",
			GuestEmail:     "ada@example.com",
			NumberOfGuests: 2,
			TotalPrice:     597,
			Status:         booking.StatusConfirmed,
			CreatedAt:      time.Date(2026, 6, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			ID:             "bk-2",
			UserID:         booking.DefaultUserID,
			RoomID:         "4",
			RoomName:       "Family Room",
			RoomImage:      "https://example.com/4.jpeg",
			RoomPrice:      249,
			CheckIn:        time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:       time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC),
			GuestName:      "Grace Hopper",
			GuestEmail:     "grace@example.com",
			NumberOfGuests: 3,
			TotalPrice:     249,
			Status:         booking.StatusCancelled,
			CreatedAt:      time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	want := sampleBookings()
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got, "every field survives the snapshot, dates included")

	assert.Equal(t, 3, got[0].Nights(), "nights recompute from restored instants")
}

func TestLoadMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadCorruptSnapshot(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	got, err := store.Load(context.Background())
	require.NoError(t, err, "corrupt data must not surface as a fatal error")
	assert.Empty(t, got)
}

func TestSaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleBookings()))
	require.NoError(t, store.Save(ctx, sampleBookings()[:1]))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bk-1", got[0].ID)
}

func TestReopenSurvivesRestart(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleBookings()))

	reopened, err := New(Config{
		L:    logger.New(logger.Config{Level: "error", File: ""}),
		Path: path,
	})
	require.NoError(t, err)

	got, err := reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleBookings(), got)
}

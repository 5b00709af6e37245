package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/emberwood/stay/internal/booking"
	"github.com/emberwood/stay/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// DB keeps the ledger snapshot in process memory. The snapshot is held
// as encoded bytes so loads exercise the same decode path as the
// durable stores.
type DB struct {
	mu       sync.Mutex
	l        *logger.Logger
	snapshot []byte
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l: conf.L,
	}
}

func (db *DB) Load(_ context.Context) ([]booking.Booking, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.snapshot == nil {
		return nil, nil
	}

	var bookings []booking.Booking

	if err := json.Unmarshal(db.snapshot, &bookings); err != nil {
		db.l.LogErrorf("Could not decode stored bookings, discarding snapshot: %v", err.Error())

		return nil, nil
	}

	return bookings, nil
}

func (db *DB) Save(_ context.Context, bookings []booking.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode %v bookings: %w", len(bookings), err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	db.snapshot = data

	return nil
}

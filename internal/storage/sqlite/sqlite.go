package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/emberwood/stay/internal/booking"
	"github.com/emberwood/stay/internal/logger"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const bucket = "bookings"

type Config struct {
	L    *logger.Logger
	Path string
}

// Store keeps the ledger snapshot as a JSON blob in a single-row state
// table, overwritten on every save.
type Store struct {
	mu sync.Mutex
	l  *logger.Logger
	db *sql.DB
}

func New(conf Config) (*Store, error) {
	path := conf.Path
	if path == "" {
		path = "stay.db"
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %v: %w", path, err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create state table: %w", err)
	}

	return &Store{
		l:  conf.L,
		db: db,
	}, nil
}

func (s *Store) Load(ctx context.Context) ([]booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payload []byte

	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE bucket = ?`, bucket).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("select state: %w", err)
	}

	var bookings []booking.Booking

	if err := json.Unmarshal(payload, &bookings); err != nil {
		s.l.LogErrorf("Could not decode stored bookings, starting empty: %v", err.Error())

		return nil, nil
	}

	return bookings, nil
}

func (s *Store) Save(ctx context.Context, bookings []booking.Booking) error {
	payload, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode %v bookings: %w", len(bookings), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `INSERT INTO state (bucket, payload) VALUES (?, ?)
		ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`, bucket, payload); err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

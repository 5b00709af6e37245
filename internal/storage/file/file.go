package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/emberwood/stay/internal/booking"
	"github.com/emberwood/stay/internal/logger"
)

type Config struct {
	L    *logger.Logger
	Path string
}

// Store snapshots the ledger to a single JSON file. Every save rewrites
// the whole file.
type Store struct {
	mu   sync.Mutex
	l    *logger.Logger
	path string
}

func New(conf Config) (*Store, error) {
	if conf.Path == "" {
		return nil, errors.New("provide snapshot file path")
	}

	if dir := filepath.Dir(conf.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	return &Store{
		l:    conf.L,
		path: conf.Path,
	}, nil
}

func (s *Store) Load(_ context.Context) ([]booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read snapshot %v: %w", s.path, err)
	}

	var bookings []booking.Booking

	if err := json.Unmarshal(data, &bookings); err != nil {
		s.l.LogErrorf("Could not decode snapshot %v, starting empty: %v", s.path, err.Error())

		return nil, nil
	}

	return bookings, nil
}

func (s *Store) Save(_ context.Context, bookings []booking.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode %v bookings: %w", len(bookings), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot %v: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot %v: %w", s.path, err)
	}

	return nil
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/emberwood/stay/internal/booking"
	"github.com/emberwood/stay/internal/logger"
)

// snapshotKey is the fixed key the whole ledger lives under.
const snapshotKey = "stay:bookings"

type Config struct {
	L   *logger.Logger
	URL string
}

type Store struct {
	l      *logger.Logger
	client *redis.Client
}

func New(ctx context.Context, conf Config) (*Store, error) {
	opt, err := redis.ParseURL(conf.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Store{
		l:      conf.L,
		client: client,
	}, nil
}

func (s *Store) Load(ctx context.Context) ([]booking.Booking, error) {
	data, err := s.client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("get %v: %w", snapshotKey, err)
	}

	var bookings []booking.Booking

	if err := json.Unmarshal(data, &bookings); err != nil {
		s.l.LogErrorf("Could not decode stored bookings, starting empty: %v", err.Error())

		return nil, nil
	}

	return bookings, nil
}

func (s *Store) Save(ctx context.Context, bookings []booking.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode %v bookings: %w", len(bookings), err)
	}

	if err := s.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("set %v: %w", snapshotKey, err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

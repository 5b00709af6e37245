package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emberwood/stay/internal/booking"
	"github.com/emberwood/stay/internal/logger"
)

type Config struct {
	L   *logger.Logger
	URL string
}

// Store persists the ledger to a bookings table. Saves are full
// snapshot overwrites inside one transaction.
type Store struct {
	l    *logger.Logger
	pool *pgxpool.Pool
}

func New(ctx context.Context, conf Config) (*Store, error) {
	pool, err := pgxpool.New(ctx, conf.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		room_id TEXT NOT NULL,
		room_name TEXT NOT NULL,
		room_image TEXT NOT NULL,
		room_price DOUBLE PRECISION NOT NULL,
		check_in TIMESTAMPTZ NOT NULL,
		check_out TIMESTAMPTZ NOT NULL,
		guest_name TEXT NOT NULL,
		guest_email TEXT NOT NULL,
		number_of_guests INT NOT NULL,
		total_price DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`); err != nil {
		pool.Close()

		return nil, fmt.Errorf("create bookings table: %w", err)
	}

	return &Store{
		l:    conf.L,
		pool: pool,
	}, nil
}

func (s *Store) Load(ctx context.Context) ([]booking.Booking, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, room_id, room_name, room_image, room_price,
			check_in, check_out, guest_name, guest_email, number_of_guests,
			total_price, status, created_at
		FROM bookings ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}
	defer rows.Close()

	var bookings []booking.Booking

	for rows.Next() {
		var b booking.Booking

		if err := rows.Scan(
			&b.ID, &b.UserID, &b.RoomID, &b.RoomName, &b.RoomImage, &b.RoomPrice,
			&b.CheckIn, &b.CheckOut, &b.GuestName, &b.GuestEmail, &b.NumberOfGuests,
			&b.TotalPrice, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}

func (s *Store) Save(ctx context.Context, bookings []booking.Booking) (err error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.l.LogErrorf("Could not rollback snapshot transaction: %v", rbErr.Error())
			}
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM bookings`); err != nil {
		return fmt.Errorf("clear bookings: %w", err)
	}

	for i := range bookings {
		b := &bookings[i]

		if _, err = tx.Exec(ctx, `
			INSERT INTO bookings (
				id, user_id, room_id, room_name, room_image, room_price,
				check_in, check_out, guest_name, guest_email, number_of_guests,
				total_price, status, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		`,
			b.ID, b.UserID, b.RoomID, b.RoomName, b.RoomImage, b.RoomPrice,
			b.CheckIn, b.CheckOut, b.GuestName, b.GuestEmail, b.NumberOfGuests,
			b.TotalPrice, b.Status, b.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert booking %v: %w", b.ID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit snapshot transaction: %w", err)
	}

	return nil
}

func (s *Store) Close() {
	s.pool.Close()
}

package booking

import (
	"context"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/emberwood/stay/internal/catalog"
	"github.com/emberwood/stay/internal/logger"
)

type idGenerator interface {
	GetID(ctx context.Context) (string, error)
}

// SnapshotStore persists the full booking ledger. Save overwrites the
// previous snapshot; Load returns an empty sequence when nothing usable
// is stored.
type SnapshotStore interface {
	Load(ctx context.Context) ([]Booking, error)
	Save(ctx context.Context, bookings []Booking) error
}

type roomCatalog interface {
	List() []catalog.Room
	Get(id string) (catalog.Room, error)
	Featured() []catalog.Room
}

// Manager owns the booking ledger and mediates every read and mutation
// on it. The ledger is sourced from the snapshot store once at
// construction and flushed back on every mutation.
type Manager struct {
	mu      sync.Mutex
	l       *logger.Logger
	catalog roomCatalog
	store   SnapshotStore
	idGen   idGenerator
	now     func() time.Time
	ledger  []Booking
}

func New(ctx context.Context, l *logger.Logger, cat roomCatalog, store SnapshotStore, idGen idGenerator) *Manager {
	m := &Manager{
		l:       l,
		catalog: cat,
		store:   store,
		idGen:   idGen,
		now:     func() time.Time { return time.Now().UTC() },
	}

	ledger, err := store.Load(ctx)
	if err != nil {
		// An unreadable store must not take the process down. Start
		// empty and surface the condition in the log.
		l.LogErrorf("Could not load booking ledger, starting empty: %v", err.Error())

		ledger = nil
	}

	m.ledger = ledger

	return m
}

func (m *Manager) ListRooms() []catalog.Room {
	return m.catalog.List()
}

func (m *Manager) GetRoom(id string) (catalog.Room, error) {
	return m.catalog.Get(id)
}

func (m *Manager) FeaturedRooms() []catalog.Room {
	return m.catalog.Featured()
}

// IsAvailable reports whether no non-cancelled booking for the room
// overlaps [from, to).
func (m *Manager) IsAvailable(roomID string, from, to time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.isAvailableLocked(roomID, from, to)
}

func (m *Manager) isAvailableLocked(roomID string, from, to time.Time) bool {
	for i := range m.ledger {
		b := &m.ledger[i]

		if b.RoomID == roomID && b.Status != StatusCancelled && b.Overlaps(from, to) {
			return false
		}
	}

	return true
}

// AvailableRooms filters the catalog down to rooms free for [from, to).
func (m *Manager) AvailableRooms(from, to time.Time) []catalog.Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	rooms := m.catalog.List()
	out := make([]catalog.Room, 0, len(rooms))

	for _, room := range rooms {
		if m.isAvailableLocked(room.ID, from, to) {
			out = append(out, room)
		}
	}

	return out
}

func (in *CreateInput) validate(room catalog.Room) error {
	inputErr := newInputError()

	if strings.TrimSpace(in.GuestName) == "" {
		inputErr.addError("guestName", "provide guest name")
	}

	if !validEmail(in.GuestEmail) {
		inputErr.addError("guestEmail", "provide valid email")
	}

	if !in.CheckIn.Before(in.CheckOut) {
		inputErr.addError("checkIn", "check-in must be before check-out")
	}

	if in.NumberOfGuests < 1 {
		inputErr.addError("numberOfGuests", "provide at least one guest")
	}

	if in.NumberOfGuests > room.Capacity {
		inputErr.addError("numberOfGuests", fmt.Sprintf("room sleeps at most %v guests", room.Capacity))
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

func validEmail(address string) bool {
	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return false
	}

	// mail.ParseAddress accepts bare hostnames; guests must give a
	// domain with a dot.
	at := strings.LastIndex(parsed.Address, "@")

	return at > 0 && strings.Contains(parsed.Address[at+1:], ".")
}

// CreateBooking validates the input, re-checks availability at the
// moment of creation and appends a confirmed booking to the ledger.
// When the snapshot write fails the booking stays in memory and the
// returned error wraps ErrPersistence so the caller knows the record
// is unconfirmed on disk.
func (m *Manager) CreateBooking(ctx context.Context, input *CreateInput) (*Booking, error) {
	room, err := m.catalog.Get(input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("look up room '%v': %w", input.RoomID, err)
	}

	if err := input.validate(room); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.isAvailableLocked(room.ID, input.CheckIn, input.CheckOut) {
		return nil, NewAvailabilityError(room.ID, input.CheckIn, input.CheckOut)
	}

	id, err := m.idGen.GetID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	var image string
	if len(room.Images) > 0 {
		image = room.Images[0]
	}

	nights := Nights(input.CheckIn, input.CheckOut)

	bk := Booking{
		ID:             id,
		UserID:         DefaultUserID,
		RoomID:         room.ID,
		RoomName:       room.Name,
		RoomImage:      image,
		RoomPrice:      room.Price,
		CheckIn:        input.CheckIn,
		CheckOut:       input.CheckOut,
		GuestName:      input.GuestName,
		GuestEmail:     input.GuestEmail,
		NumberOfGuests: input.NumberOfGuests,
		TotalPrice:     float64(nights) * room.Price,
		Status:         StatusConfirmed,
		CreatedAt:      m.now(),
	}

	m.ledger = append(m.ledger, bk)

	if err := m.persistLocked(ctx); err != nil {
		return &bk, err
	}

	m.l.LogInfo("Booking %v created for room '%v' (%v nights)", bk.ID, room.ID, nights)

	return &bk, nil
}

// CancelBooking flips the record to cancelled in place. Cancelling an
// already cancelled booking succeeds without touching the store.
func (m *Manager) CancelBooking(ctx context.Context, bookingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.ledger {
		if m.ledger[i].ID != bookingID {
			continue
		}

		if m.ledger[i].Status == StatusCancelled {
			return nil
		}

		m.ledger[i].Status = StatusCancelled

		if err := m.persistLocked(ctx); err != nil {
			return err
		}

		m.l.LogInfo("Booking %v cancelled", bookingID)

		return nil
	}

	return fmt.Errorf("booking '%v': %w", bookingID, ErrNotFound)
}

// Bookings returns the requested read projection, newest creation first.
func (m *Manager) Bookings(projection Projection) []Booking {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	out := make([]Booking, 0, len(m.ledger))

	for _, b := range m.ledger {
		switch projection {
		case ProjectionUpcoming:
			if b.Status == StatusConfirmed && b.CheckOut.After(now) {
				out = append(out, b)
			}
		case ProjectionPast:
			if b.Status != StatusCancelled && !b.CheckOut.After(now) {
				out = append(out, b)
			}
		case ProjectionCancelled:
			if b.Status == StatusCancelled {
				out = append(out, b)
			}
		case ProjectionAll:
			out = append(out, b)
		default:
			out = append(out, b)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}

func (m *Manager) persistLocked(ctx context.Context) error {
	snapshot := make([]Booking, len(m.ledger))
	copy(snapshot, m.ledger)

	if err := m.store.Save(ctx, snapshot); err != nil {
		m.l.LogErrorf("Could not persist booking ledger: %v", err.Error())

		return fmt.Errorf("save %v bookings: %v: %w", len(snapshot), err.Error(), ErrPersistence)
	}

	return nil
}

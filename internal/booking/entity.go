package booking

import (
	"math"
	"time"

	"github.com/emberwood/stay/internal/catalog"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	// StatusCompleted is a read-time label for confirmed bookings whose
	// stay already ended. It is never stored.
	StatusCompleted Status = "completed"
)

// DefaultUserID stands in for an authenticated guest until the booking
// core is wired to a real identity provider.
const DefaultUserID = "user-1"

// Booking is a ledger record. Room name, image and nightly price are
// frozen at creation time so later catalog edits do not rewrite history.
type Booking struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	RoomID         string    `json:"room_id"`
	RoomName       string    `json:"room_name"`
	RoomImage      string    `json:"room_image"`
	RoomPrice      float64   `json:"room_price"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	GuestName      string    `json:"guest_name"`
	GuestEmail     string    `json:"guest_email"`
	NumberOfGuests int       `json:"number_of_guests"`
	TotalPrice     float64   `json:"total_price"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// Nights counts billable nights as the ceiling of the stay length in
// whole days.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24)) //nolint:gomnd
}

func (b *Booking) Nights() int {
	return Nights(b.CheckIn, b.CheckOut)
}

// Overlaps reports whether the stay intersects [from, to). Intervals are
// half-open, so a checkout equal to another booking's check-in does not
// conflict.
func (b *Booking) Overlaps(from, to time.Time) bool {
	return b.CheckIn.Before(to) && from.Before(b.CheckOut)
}

// DerivedStatus relabels a confirmed booking whose checkout has passed
// as completed.
func (b *Booking) DerivedStatus(now time.Time) Status {
	if b.Status == StatusConfirmed && !b.CheckOut.After(now) {
		return StatusCompleted
	}

	return b.Status
}

type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type CreateInput struct {
	RoomID         string    `json:"room_id"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	GuestName      string    `json:"guest_name"`
	GuestEmail     string    `json:"guest_email"`
	NumberOfGuests int       `json:"number_of_guests"`
}

type Projection string

const (
	ProjectionAll       Projection = "all"
	ProjectionUpcoming  Projection = "upcoming"
	ProjectionPast      Projection = "past"
	ProjectionCancelled Projection = "cancelled"
)

// FilterOptions narrows a room collection. Empty RoomTypes or Amenities
// mean no constraint on that axis.
type FilterOptions struct {
	PriceMin  float64            `json:"price_min"`
	PriceMax  float64            `json:"price_max"`
	RoomTypes []catalog.RoomType `json:"room_types"`
	Capacity  int                `json:"capacity"`
	Amenities []string           `json:"amenities"`
}

// DefaultFilters mirrors the browse page defaults: the full price band
// of the catalog and a single guest.
func DefaultFilters() FilterOptions {
	return FilterOptions{
		PriceMin:  0,
		PriceMax:  500, //nolint:gomnd
		RoomTypes: nil,
		Capacity:  1,
		Amenities: nil,
	}
}

package catalog

import (
	"errors"
	"fmt"
)

var ErrRoomNotFound = errors.New("room not found")

type RoomType string

const (
	TypeStandard RoomType = "Standard"
	TypeDeluxe   RoomType = "Deluxe"
	TypeSuperior RoomType = "Superior"
	TypeSuite    RoomType = "Suite"
	TypeFamily   RoomType = "Family"
)

// Room is an immutable catalog entry. Amenity and image order is the
// display order.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        RoomType `json:"type"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Size        float64  `json:"size"`
	Featured    bool     `json:"featured"`
}

// Store holds the room catalog for the lifetime of the process. It is
// loaded once and never mutated.
type Store struct {
	rooms []Room
	byID  map[string]int
}

func New(rooms []Room) *Store {
	s := &Store{
		rooms: rooms,
		byID:  make(map[string]int, len(rooms)),
	}

	for i, room := range rooms {
		s.byID[room.ID] = i
	}

	return s
}

// NewFromSeed builds the store from the static room definitions.
func NewFromSeed() *Store {
	return New(seedRooms())
}

func (s *Store) List() []Room {
	out := make([]Room, len(s.rooms))
	copy(out, s.rooms)

	return out
}

func (s *Store) Get(id string) (Room, error) {
	i, ok := s.byID[id]
	if !ok {
		return Room{}, fmt.Errorf("room '%v': %w", id, ErrRoomNotFound)
	}

	return s.rooms[i], nil
}

func (s *Store) Featured() []Room {
	var out []Room

	for _, room := range s.rooms {
		if room.Featured {
			out = append(out, room)
		}
	}

	return out
}

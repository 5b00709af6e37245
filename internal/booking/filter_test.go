package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberwood/stay/internal/catalog"
)

func roomIDs(rooms []catalog.Room) []string {
	ids := make([]string, 0, len(rooms))
	for _, room := range rooms {
		ids = append(ids, room.ID)
	}

	return ids
}

func TestApplyFiltersDefaultsAcceptAll(t *testing.T) {
	rooms := catalog.NewFromSeed().List()

	out := ApplyFilters(rooms, DefaultFilters())

	assert.Equal(t, roomIDs(rooms), roomIDs(out), "defaults keep every room in catalog order")
}

func TestApplyFiltersPriceBandInclusive(t *testing.T) {
	rooms := catalog.NewFromSeed().List()

	filters := DefaultFilters()
	filters.PriceMin = 149
	filters.PriceMax = 199

	out := ApplyFilters(rooms, filters)

	// Bounds are inclusive: the 149 and 199 rooms both survive.
	assert.Equal(t, []string{"1", "2", "6"}, roomIDs(out))
}

func TestApplyFiltersRoomTypes(t *testing.T) {
	rooms := catalog.NewFromSeed().List()

	filters := DefaultFilters()
	filters.RoomTypes = []catalog.RoomType{catalog.TypeSuite}

	out := ApplyFilters(rooms, filters)

	assert.Equal(t, []string{"3", "5"}, roomIDs(out))
}

func TestApplyFiltersCapacity(t *testing.T) {
	rooms := catalog.NewFromSeed().List()

	filters := DefaultFilters()
	filters.Capacity = 3

	out := ApplyFilters(rooms, filters)

	require.Len(t, out, 1)
	assert.Equal(t, "4", out[0].ID)
}

func TestApplyFiltersAmenitySubset(t *testing.T) {
	rooms := catalog.NewFromSeed().List()

	filters := DefaultFilters()
	filters.Amenities = []string{"Free Wi-Fi", "Bathrobes"}

	out := ApplyFilters(rooms, filters)

	// Every required amenity must appear; extra room amenities are fine.
	assert.Equal(t, []string{"1", "3", "5"}, roomIDs(out))
}

func TestApplyFiltersAmenityCaseSensitive(t *testing.T) {
	rooms := catalog.NewFromSeed().List()

	filters := DefaultFilters()
	filters.Amenities = []string{"free wi-fi"}

	out := ApplyFilters(rooms, filters)
	assert.Empty(t, out)
}

func TestApplyFiltersConjunctive(t *testing.T) {
	rooms := catalog.NewFromSeed().List()

	filters := DefaultFilters()
	filters.RoomTypes = []catalog.RoomType{catalog.TypeSuite, catalog.TypeFamily}
	filters.PriceMax = 299

	out := ApplyFilters(rooms, filters)

	assert.Equal(t, []string{"3", "4"}, roomIDs(out), "every axis must hold")
}

func TestApplyFiltersIdempotent(t *testing.T) {
	rooms := catalog.NewFromSeed().List()

	filters := DefaultFilters()
	filters.Amenities = []string{"Mini-bar"}
	filters.Capacity = 2

	once := ApplyFilters(rooms, filters)
	twice := ApplyFilters(once, filters)

	assert.Equal(t, once, twice)
}

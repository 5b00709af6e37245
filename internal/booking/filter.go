package booking

import "github.com/emberwood/stay/internal/catalog"

type roomPredicate func(room catalog.Room) bool

func (f FilterOptions) predicates() []roomPredicate {
	preds := []roomPredicate{
		func(room catalog.Room) bool {
			return room.Price >= f.PriceMin && room.Price <= f.PriceMax
		},
		func(room catalog.Room) bool {
			return room.Capacity >= f.Capacity
		},
	}

	if len(f.RoomTypes) > 0 {
		accepted := make(map[catalog.RoomType]struct{}, len(f.RoomTypes))
		for _, roomType := range f.RoomTypes {
			accepted[roomType] = struct{}{}
		}

		preds = append(preds, func(room catalog.Room) bool {
			_, ok := accepted[room.Type]

			return ok
		})
	}

	if len(f.Amenities) > 0 {
		required := f.Amenities

		preds = append(preds, func(room catalog.Room) bool {
			offered := make(map[string]struct{}, len(room.Amenities))
			for _, amenity := range room.Amenities {
				offered[amenity] = struct{}{}
			}

			for _, amenity := range required {
				if _, ok := offered[amenity]; !ok {
					return false
				}
			}

			return true
		})
	}

	return preds
}

// ApplyFilters keeps the rooms matching every filter axis. The input
// order is preserved; comparisons are exact against the catalog's
// canonical vocabulary.
func ApplyFilters(rooms []catalog.Room, filters FilterOptions) []catalog.Room {
	preds := filters.predicates()
	out := make([]catalog.Room, 0, len(rooms))

	for _, room := range rooms {
		matches := true

		for _, pred := range preds {
			if !pred(room) {
				matches = false

				break
			}
		}

		if matches {
			out = append(out, room)
		}
	}

	return out
}

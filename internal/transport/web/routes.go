package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/emberwood/stay/internal/booking"
	"github.com/emberwood/stay/internal/catalog"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return t.UTC(), nil
}

func parseRange(query url.Values) (booking.DateRange, bool, error) {
	fromRaw, toRaw := query.Get("from"), query.Get("to")
	if fromRaw == "" && toRaw == "" {
		return booking.DateRange{}, false, nil
	}

	from, err := parseDate(fromRaw)
	if err != nil {
		return booking.DateRange{}, false, err
	}

	to, err := parseDate(toRaw)
	if err != nil {
		return booking.DateRange{}, false, err
	}

	if !from.Before(to) {
		return booking.DateRange{}, false, errors.New("'from' must be before 'to'")
	}

	return booking.DateRange{From: from, To: to}, true, nil
}

func parseFilters(query url.Values) (booking.FilterOptions, error) {
	filters := booking.DefaultFilters()

	if raw := query.Get("price_min"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, fmt.Errorf("parse price_min: %w", err)
		}

		filters.PriceMin = v
	}

	if raw := query.Get("price_max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, fmt.Errorf("parse price_max: %w", err)
		}

		filters.PriceMax = v
	}

	if filters.PriceMin > filters.PriceMax {
		return filters, errors.New("price_min must not exceed price_max")
	}

	if raw := query.Get("capacity"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return filters, fmt.Errorf("parse capacity %q", raw)
		}

		filters.Capacity = v
	}

	for _, roomType := range query["type"] {
		filters.RoomTypes = append(filters.RoomTypes, catalog.RoomType(roomType))
	}

	filters.Amenities = append(filters.Amenities, query["amenity"]...)

	return filters, nil
}

// listRoomsHandler serves the room listing: the full catalog, narrowed
// by the optional date range and filter query parameters.
func (s *Server) listRoomsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateRange, ranged, err := parseRange(query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	filters, err := parseFilters(query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	rooms := s.bManager.ListRooms()
	if ranged {
		rooms = s.bManager.AvailableRooms(dateRange.From, dateRange.To)
	}

	s.writeJSON(w, http.StatusOK, booking.ApplyFilters(rooms, filters))
}

func (s *Server) featuredRoomsHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.bManager.FeaturedRooms())
}

func (s *Server) getRoomHandler(w http.ResponseWriter, r *http.Request) {
	room, err := s.bManager.GetRoom(r.PathValue("id"))
	if errors.Is(err, catalog.ErrRoomNotFound) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not get room: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusOK, room)
}

func (s *Server) roomAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	dateRange, ranged, err := parseRange(r.URL.Query())
	if err != nil || !ranged {
		http.Error(w, "provide 'from' and 'to' dates", http.StatusBadRequest)

		return
	}

	roomID := r.PathValue("id")

	if _, err := s.bManager.GetRoom(roomID); errors.Is(err, catalog.ErrRoomNotFound) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	available := s.bManager.IsAvailable(roomID, dateRange.From, dateRange.To)

	s.writeJSON(w, http.StatusOK, map[string]bool{"available": available})
}

func (s *Server) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	var input booking.CreateInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	out, err := s.bManager.CreateBooking(r.Context(), &input)

	if inputErr := booking.IsInputError(err); inputErr != nil {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	if availabilityErr := booking.IsAvailabilityError(err); availabilityErr != nil {
		s.writeJSON(w, http.StatusPreconditionFailed, map[string]string{"error": availabilityErr.Error()})

		return
	}

	if errors.Is(err, catalog.ErrRoomNotFound) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	if errors.Is(err, booking.ErrPersistence) {
		// The booking is held in memory but not confirmed durable.
		s.l.LogErrorf("Booking %v accepted but not persisted: %v", out.ID, err.Error())
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "booking accepted but not persisted",
		})

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not create a booking: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	s.writeJSON(w, http.StatusCreated, out)
}

func (s *Server) cancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	err := s.bManager.CancelBooking(r.Context(), r.PathValue("id"))

	if errors.Is(err, booking.ErrNotFound) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)

		return
	}

	if err != nil {
		s.l.LogErrorf("Could not cancel booking: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listBookingsHandler(w http.ResponseWriter, r *http.Request) {
	projection := booking.Projection(r.URL.Query().Get("view"))
	if projection == "" {
		projection = booking.ProjectionAll
	}

	switch projection {
	case booking.ProjectionAll, booking.ProjectionUpcoming, booking.ProjectionPast, booking.ProjectionCancelled:
	default:
		http.Error(w, fmt.Sprintf("unknown view %q", projection), http.StatusBadRequest)

		return
	}

	s.writeJSON(w, http.StatusOK, s.bManager.Bookings(projection))
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	middlewares := []func(http.Handler) http.Handler{s.loggerMiddleware(), s.recoverMiddleware()}

	r.Handle(
		"GET /api/rooms/v1",
		s.applyMiddlewares(http.HandlerFunc(s.listRoomsHandler), middlewares...),
	)
	r.Handle(
		"GET /api/rooms/v1/featured",
		s.applyMiddlewares(http.HandlerFunc(s.featuredRoomsHandler), middlewares...),
	)
	r.Handle(
		"GET /api/rooms/v1/{id}",
		s.applyMiddlewares(http.HandlerFunc(s.getRoomHandler), middlewares...),
	)
	r.Handle(
		"GET /api/rooms/v1/{id}/availability",
		s.applyMiddlewares(http.HandlerFunc(s.roomAvailabilityHandler), middlewares...),
	)
	r.Handle(
		"POST /api/bookings/v1",
		s.applyMiddlewares(http.HandlerFunc(s.createBookingHandler), middlewares...),
	)
	r.Handle(
		"POST /api/bookings/v1/{id}/cancel",
		s.applyMiddlewares(http.HandlerFunc(s.cancelBookingHandler), middlewares...),
	)
	r.Handle(
		"GET /api/bookings/v1",
		s.applyMiddlewares(http.HandlerFunc(s.listBookingsHandler), middlewares...),
	)
	r.Handle(
		fmt.Sprintf("GET %s", s.conf.LivenessEndpoint),
		s.applyMiddlewares(http.HandlerFunc(s.livenessHandler), middlewares...),
	)
}

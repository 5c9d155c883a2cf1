package services

import (
	"strings"
	"time"

	"travelbook/internal/domain/models"
	"travelbook/internal/store"
	"travelbook/internal/utils"
)

// SearchService filters the catalog. Both searches are plain linear scans;
// the fixture catalog is small enough that indexing would be overhead. A
// larger catalog would want a route/city index here.
type SearchService struct {
	Store *store.Store
}

// SearchTravel matches options whose route contains the given endpoints,
// case-insensitive ("Mumbai" matches "Mumbai Central"). Type must match
// exactly when given; date compares calendar day only. Results keep fixture
// order.
func (s SearchService) SearchTravel(from, to, typ string, date *time.Time) []models.TravelOption {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))
	typ = strings.TrimSpace(typ)

	out := []models.TravelOption{}
	for _, opt := range s.Store.TravelOptions() {
		if !strings.Contains(strings.ToLower(opt.From), from) ||
			!strings.Contains(strings.ToLower(opt.To), to) {
			continue
		}
		if typ != "" && opt.Type != typ {
			continue
		}
		if date != nil && !utils.SameCalendarDay(opt.Departure, *date) {
			continue
		}
		out = append(out, opt)
	}
	return out
}

// SearchHotels matches hotels whose city OR location contains the query,
// case-insensitive. When guests > 0 the hotel must have enough rooms under
// the 2-guests-per-room assumption. Check-in/check-out are accepted for
// parity with the booking form but do not filter availability.
func (s SearchService) SearchHotels(city string, checkIn, checkOut *time.Time, guests int) []models.Hotel {
	_ = checkIn
	_ = checkOut

	q := strings.ToLower(strings.TrimSpace(city))
	neededRooms := (guests + 1) / 2

	out := []models.Hotel{}
	for _, h := range s.Store.Hotels() {
		if !strings.Contains(strings.ToLower(h.City), q) &&
			!strings.Contains(strings.ToLower(h.Location), q) {
			continue
		}
		if guests > 0 && h.AvailableRooms < neededRooms {
			continue
		}
		out = append(out, h)
	}
	return out
}

package store

import (
	"fmt"
	"sync"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

// Store holds every collection for the process lifetime. Records are only
// appended; the exceptions are User.BookingIDs (append) and
// Hotel.AvailableRooms (decrement). Ids come from per-collection monotonic
// counters seeded to the fixture counts, so they stay unique regardless of
// collection length.
type Store struct {
	mu            sync.RWMutex
	users         []models.User
	travelOptions []models.TravelOption
	hotels        []models.Hotel
	bookings      []models.Booking
	hotelBookings []models.HotelBooking
	payments      []models.Payment

	userSeq         int
	bookingSeq      int
	hotelBookingSeq int
	paymentSeq      int
}

// Seed bundles the fixture collections used to construct a Store.
type Seed struct {
	Users         []models.User
	TravelOptions []models.TravelOption
	Hotels        []models.Hotel
	Bookings      []models.Booking
	HotelBookings []models.HotelBooking
	Payments      []models.Payment
}

// New builds a Store owning copies of the seed collections.
func New(seed Seed) *Store {
	s := &Store{
		users:         append([]models.User(nil), seed.Users...),
		travelOptions: append([]models.TravelOption(nil), seed.TravelOptions...),
		hotels:        append([]models.Hotel(nil), seed.Hotels...),
		bookings:      append([]models.Booking(nil), seed.Bookings...),
		hotelBookings: append([]models.HotelBooking(nil), seed.HotelBookings...),
		payments:      append([]models.Payment(nil), seed.Payments...),
	}
	s.userSeq = len(s.users)
	s.bookingSeq = len(s.bookings)
	s.hotelBookingSeq = len(s.hotelBookings)
	s.paymentSeq = len(s.payments)
	for i := range s.users {
		s.users[i].BookingIDs = append([]string(nil), s.users[i].BookingIDs...)
	}
	return s
}

func cloneUser(u models.User) models.User {
	u.BookingIDs = append([]string(nil), u.BookingIDs...)
	return u
}

// UserByID returns a copy of the user record.
func (s *Store) UserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

// UsersByEmail returns every user with an exactly matching email. Email is not
// unique in this store; credential checks must compare per candidate.
func (s *Store) UsersByEmail(email string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.User{}
	for _, u := range s.users {
		if u.Email == email {
			out = append(out, cloneUser(u))
		}
	}
	return out
}

// AddUser appends a new user, assigning the next user id when none is set.
func (s *Store) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		s.userSeq++
		u.ID = fmt.Sprintf("user%d", s.userSeq)
	}
	if u.BookingIDs == nil {
		u.BookingIDs = []string{}
	}
	s.users = append(s.users, u)
	return cloneUser(u)
}

// AddBookingToUser appends a booking id to the owning user's denormalized list.
func (s *Store) AddBookingToUser(userID, bookingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i].BookingIDs = append(s.users[i].BookingIDs, bookingID)
			return
		}
	}
}

// TravelOptions returns the read-only catalog in fixture order.
func (s *Store) TravelOptions() []models.TravelOption {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TravelOption(nil), s.travelOptions...)
}

func (s *Store) TravelOptionByID(id string) (models.TravelOption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, opt := range s.travelOptions {
		if opt.ID == id {
			return opt, nil
		}
	}
	return models.TravelOption{}, domain.NotFoundError{Resource: "travel option"}
}

// Hotels returns the hotel catalog in fixture order.
func (s *Store) Hotels() []models.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Hotel(nil), s.hotels...)
}

func (s *Store) HotelByID(id string) (models.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Hotel{}, domain.NotFoundError{Resource: "hotel"}
}

// DecrementRooms lowers a hotel's available room count. No floor check is
// applied; the count can go negative, matching legacy behavior.
func (s *Store) DecrementRooms(hotelID string, rooms int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.hotels {
		if s.hotels[i].ID == hotelID {
			s.hotels[i].AvailableRooms -= rooms
			return
		}
	}
}

// AddBooking appends a travel booking, assigning the next booking id.
func (s *Store) AddBooking(b models.Booking) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == "" {
		s.bookingSeq++
		b.ID = fmt.Sprintf("booking%d", s.bookingSeq)
	}
	s.bookings = append(s.bookings, b)
	return b
}

func (s *Store) BookingByID(id string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

// BookingsByUser lists travel bookings owned by a user, oldest first.
func (s *Store) BookingsByUser(userID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// AddHotelBooking appends a hotel booking, assigning the next id.
func (s *Store) AddHotelBooking(hb models.HotelBooking) models.HotelBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	if hb.ID == "" {
		s.hotelBookingSeq++
		hb.ID = fmt.Sprintf("hotelbooking%d", s.hotelBookingSeq)
	}
	s.hotelBookings = append(s.hotelBookings, hb)
	return hb
}

func (s *Store) HotelBookingByID(id string) (models.HotelBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, hb := range s.hotelBookings {
		if hb.ID == id {
			return hb, nil
		}
	}
	return models.HotelBooking{}, domain.NotFoundError{Resource: "hotel booking"}
}

// HotelBookingsByUser lists hotel bookings owned by a user, oldest first.
func (s *Store) HotelBookingsByUser(userID string) []models.HotelBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.HotelBooking{}
	for _, hb := range s.hotelBookings {
		if hb.UserID == userID {
			out = append(out, hb)
		}
	}
	return out
}

// AddPayment appends a payment, assigning the next payment id.
func (s *Store) AddPayment(p models.Payment) models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		s.paymentSeq++
		p.ID = fmt.Sprintf("payment%d", s.paymentSeq)
	}
	s.payments = append(s.payments, p)
	return p
}

func (s *Store) PaymentByID(id string) (models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Payment{}, domain.NotFoundError{Resource: "payment"}
}

// Counts reports per-collection record counts (used by the health endpoint).
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"users":          len(s.users),
		"travel_options": len(s.travelOptions),
		"hotels":         len(s.hotels),
		"bookings":       len(s.bookings),
		"hotel_bookings": len(s.hotelBookings),
		"payments":       len(s.payments),
	}
}

package services

import (
	"time"

	"travelbook/internal/domain/models"
	"travelbook/internal/store"
)

// BookingService creates booking and payment records. These operations are
// best-effort and always succeed: they fill derived fields (id, created_at),
// append the record, and maintain the cross-references the web client relies
// on. Input validation is the flow controller's job.
type BookingService struct {
	Store *store.Store
	Now   func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateBooking stores a travel booking and links its id into the owning
// user's booking list.
func (s BookingService) CreateBooking(b models.Booking) models.Booking {
	b.CreatedAt = s.now()
	b = s.Store.AddBooking(b)
	s.Store.AddBookingToUser(b.UserID, b.ID)
	return b
}

// CreateHotelBooking stores a hotel booking, links it to the user, and
// decrements the hotel's available room count by the booked rooms. The count
// is not floor-checked; see the regression test.
func (s BookingService) CreateHotelBooking(hb models.HotelBooking) models.HotelBooking {
	hb.CreatedAt = s.now()
	hb = s.Store.AddHotelBooking(hb)
	s.Store.AddBookingToUser(hb.UserID, hb.ID)
	s.Store.DecrementRooms(hb.HotelID, hb.Rooms)
	return hb
}

// CreatePayment stores a payment record. The payment id is NOT written back
// onto the booking: bookings keep the placeholder PaymentID they were created
// with, matching the original flow.
func (s BookingService) CreatePayment(p models.Payment) models.Payment {
	p.CreatedAt = s.now()
	return s.Store.AddPayment(p)
}

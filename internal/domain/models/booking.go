package models

import "time"

// Booking statuses.
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// Passenger is a value type carried inside a travel booking.
type Passenger struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`    // male / female / other
	IDType   string `json:"id_type"`   // aadhar / passport / driving_license
	IDNumber string `json:"id_number"`
}

// Booking is a confirmed travel reservation.
type Booking struct {
	ID             string      `json:"id"`
	UserID         string      `json:"user_id"`
	TravelOptionID string      `json:"travel_option_id"`
	Passengers     []Passenger `json:"passengers"`
	TotalAmount    int64       `json:"total_amount"`
	Status         string      `json:"status"`
	PaymentID      string      `json:"payment_id"`
	CreatedAt      time.Time   `json:"created_at"`
	SeatNumbers    []string    `json:"seat_numbers,omitempty"`
}

// GuestDetails is the contact block stored on a hotel booking.
type GuestDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// HotelBooking is a confirmed hotel reservation. Stay dates are plain
// YYYY-MM-DD strings, the same shape the booking form submits.
type HotelBooking struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	HotelID      string       `json:"hotel_id"`
	CheckInDate  string       `json:"check_in_date"`
	CheckOutDate string       `json:"check_out_date"`
	Guests       int          `json:"guests"`
	Rooms        int          `json:"rooms"`
	TotalAmount  int64        `json:"total_amount"`
	Status       string       `json:"status"`
	PaymentID    string       `json:"payment_id"`
	CreatedAt    time.Time    `json:"created_at"`
	GuestDetails GuestDetails `json:"guest_details"`
}

package services

import (
	"strings"
	"testing"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/store"
)

func newTestFlow(st *store.Store) FlowService {
	fixed := time.Date(2024, 12, 1, 10, 0, 0, 0, time.Local)
	return FlowService{
		Store:    st,
		Bookings: BookingService{Store: st, Now: func() time.Time { return fixed }},
		Sleep:    func(time.Duration) {},
		Now:      func() time.Time { return fixed },
	}
}

func cardDetails() PaymentDetails {
	return PaymentDetails{
		CardNumber: "4111111111111111",
		CardExpiry: "12/30",
		CardCVV:    "123",
		CardName:   "John Doe",
	}
}

func TestBookTravelRequiresLogin(t *testing.T) {
	flow := newTestFlow(store.New(store.DefaultSeed()))

	_, _, err := flow.BookTravel("", TravelBookingInput{
		TravelOptionID: "train1",
		Passengers:     []models.Passenger{{Name: "A", Age: 30}},
		Method:         models.MethodCard,
		Details:        cardDetails(),
	})
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestBookTravelSuccess(t *testing.T) {
	st := store.New(store.DefaultSeed())
	flow := newTestFlow(st)

	booking, payment, err := flow.BookTravel("", TravelBookingInput{
		UserID:         "user1",
		TravelOptionID: "train1",
		Passengers: []models.Passenger{
			{Name: "A", Age: 30},
			{Name: "B", Age: 28},
			{Name: "C", Age: 5},
		},
		SeatNumbers: []string{"S1", "S2", "S3"},
		Method:      models.MethodCard,
		Details:     cardDetails(),
	})
	if err != nil {
		t.Fatalf("BookTravel: %v", err)
	}

	// train1 is 1250/seat: base 3750, taxes 450, final 4200
	if booking.TotalAmount != 4200 {
		t.Fatalf("total = %d, want 4200", booking.TotalAmount)
	}
	if booking.Status != models.StatusConfirmed {
		t.Fatalf("status = %q, want confirmed", booking.Status)
	}
	if booking.PaymentID != "temp" {
		t.Fatalf("booking payment id = %q, want temp", booking.PaymentID)
	}
	if payment.Status != models.PaymentSuccess || payment.Amount != 4200 {
		t.Fatalf("payment = %+v", payment)
	}
	if !strings.HasPrefix(payment.TransactionID, "TXN") {
		t.Fatalf("transaction id = %q, want TXN prefix", payment.TransactionID)
	}

	user, _ := st.UserByID("user1")
	linked := false
	for _, id := range user.BookingIDs {
		if id == booking.ID {
			linked = true
		}
	}
	if !linked {
		t.Fatalf("booking %s not linked to user", booking.ID)
	}

	// stored payment keeps its own id; the booking still says temp
	stored, err := st.BookingByID(booking.ID)
	if err != nil {
		t.Fatalf("BookingByID: %v", err)
	}
	if stored.PaymentID != "temp" {
		t.Fatalf("stored booking payment id = %q, want temp", stored.PaymentID)
	}
}

func TestBookTravelValidation(t *testing.T) {
	flow := newTestFlow(store.New(store.DefaultSeed()))

	_, _, err := flow.BookTravel("", TravelBookingInput{
		UserID:         "user1",
		TravelOptionID: "train1",
		Method:         models.MethodCard,
		Details:        cardDetails(),
	})
	if !domain.IsValidation(err) {
		t.Fatalf("no passengers: expected validation error, got %v", err)
	}

	_, _, err = flow.BookTravel("", TravelBookingInput{
		UserID:         "user1",
		TravelOptionID: "no-such-option",
		Passengers:     []models.Passenger{{Name: "A", Age: 30}},
		Method:         models.MethodCard,
		Details:        cardDetails(),
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("bad option: expected not found, got %v", err)
	}
}

func TestPaymentDetailValidation(t *testing.T) {
	flow := newTestFlow(store.New(store.DefaultSeed()))

	cases := []struct {
		name    string
		method  string
		details PaymentDetails
		wantErr bool
	}{
		{"card missing cvv", models.MethodCard, PaymentDetails{CardNumber: "4111", CardExpiry: "12/30", CardName: "A"}, true},
		{"upi missing id", models.MethodUPI, PaymentDetails{}, true},
		{"upi ok", models.MethodUPI, PaymentDetails{UPIID: "john@upi"}, false},
		{"netbanking missing bank", models.MethodNetbanking, PaymentDetails{}, true},
		{"netbanking ok", models.MethodNetbanking, PaymentDetails{Bank: "SBI"}, false},
		{"wallet missing provider", models.MethodWallet, PaymentDetails{}, true},
		{"wallet ok", models.MethodWallet, PaymentDetails{Provider: "Paytm"}, false},
		{"unknown method", "cash", PaymentDetails{}, true},
	}

	for _, tc := range cases {
		_, _, err := flow.BookTravel("", TravelBookingInput{
			UserID:         "user1",
			TravelOptionID: "train1",
			Passengers:     []models.Passenger{{Name: "A", Age: 30}},
			Method:         tc.method,
			Details:        tc.details,
		})
		if tc.wantErr && !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
	}
}

func TestBookHotelSuccess(t *testing.T) {
	st := store.New(store.DefaultSeed())
	flow := newTestFlow(st)

	before, _ := st.HotelByID("hotel1")

	booking, payment, err := flow.BookHotel("", HotelBookingInput{
		UserID:       "user1",
		HotelID:      "hotel1",
		CheckInDate:  "2025-01-10",
		CheckOutDate: "2025-01-13",
		Guests:       4,
		Rooms:        2,
		GuestDetails: models.GuestDetails{Name: "John", Email: "john@example.com", Phone: "9876543210"},
		Method:       models.MethodUPI,
		Details:      PaymentDetails{UPIID: "john@upi"},
	})
	if err != nil {
		t.Fatalf("BookHotel: %v", err)
	}

	// hotel1 is 4500/night: 3 nights x 2 rooms = 27000, taxes 3240, final 30240
	if booking.TotalAmount != 30240 {
		t.Fatalf("total = %d, want 30240", booking.TotalAmount)
	}
	if booking.PaymentID != "temp" {
		t.Fatalf("booking payment id = %q, want temp", booking.PaymentID)
	}
	if !strings.HasPrefix(payment.TransactionID, "HTL") {
		t.Fatalf("transaction id = %q, want HTL prefix", payment.TransactionID)
	}

	after, _ := st.HotelByID("hotel1")
	if after.AvailableRooms != before.AvailableRooms-2 {
		t.Fatalf("rooms = %d, want %d", after.AvailableRooms, before.AvailableRooms-2)
	}
}

func TestBookHotelDateValidation(t *testing.T) {
	flow := newTestFlow(store.New(store.DefaultSeed()))

	base := HotelBookingInput{
		UserID:  "user1",
		HotelID: "hotel1",
		Guests:  2,
		Rooms:   1,
		Method:  models.MethodUPI,
		Details: PaymentDetails{UPIID: "john@upi"},
	}

	in := base
	in.CheckOutDate = "2025-01-13"
	if _, _, err := flow.BookHotel("", in); !domain.IsValidation(err) {
		t.Fatalf("missing check-in: expected validation error, got %v", err)
	}

	in = base
	in.CheckInDate = "2025-01-13"
	in.CheckOutDate = "2025-01-10"
	if _, _, err := flow.BookHotel("", in); !domain.IsValidation(err) {
		t.Fatalf("checkout before checkin: expected validation error, got %v", err)
	}

	in = base
	in.CheckInDate = "2025-01-10"
	in.CheckOutDate = "2025-01-10"
	if _, _, err := flow.BookHotel("", in); !domain.IsValidation(err) {
		t.Fatalf("same-day checkout: expected validation error, got %v", err)
	}
}

func TestBookHotelRequiresLogin(t *testing.T) {
	flow := newTestFlow(store.New(store.DefaultSeed()))

	_, _, err := flow.BookHotel("", HotelBookingInput{
		HotelID:      "hotel1",
		CheckInDate:  "2025-01-10",
		CheckOutDate: "2025-01-12",
		Rooms:        1,
		Method:       models.MethodUPI,
		Details:      PaymentDetails{UPIID: "x@upi"},
	})
	if !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

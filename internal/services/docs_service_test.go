package services

import (
	"bytes"
	"testing"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/store"
)

func TestDocsServiceGenerate(t *testing.T) {
	travelLoader := func(id string) (travelDocData, error) {
		return travelDocData{
			BookingID:   id,
			Status:      models.StatusConfirmed,
			Type:        models.TravelTrain,
			Operator:    "Rajdhani Express",
			From:        "Delhi",
			To:          "Mumbai",
			Departure:   time.Date(2024, 12, 25, 16, 55, 0, 0, time.Local),
			Arrival:     time.Date(2024, 12, 26, 8, 35, 0, 0, time.Local),
			Passengers:  []models.Passenger{{Name: "Tester", Age: 30}},
			SeatNumbers: []string{"A1"},
			TotalAmount: 1400,
		}, nil
	}
	hotelLoader := func(id string) (hotelDocData, error) {
		return hotelDocData{
			BookingID:   id,
			Status:      models.StatusConfirmed,
			HotelName:   "Taj Beach Resort",
			Location:    "Calangute",
			City:        "Goa",
			RoomType:    "Deluxe",
			CheckIn:     "2025-01-10",
			CheckOut:    "2025-01-13",
			Guests:      2,
			Rooms:       1,
			GuestName:   "Tester",
			GuestPhone:  "0800",
			TotalAmount: 15120,
		}, nil
	}

	svc := DocsService{TravelLoader: travelLoader, HotelLoader: hotelLoader}

	pdf, filename, err := svc.GenerateETicket("user1", "booking1")
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateETicket returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("e-ticket is not a PDF")
	}

	voucher, vName, err := svc.GenerateVoucher("user1", "hotelbooking1")
	if err != nil {
		t.Fatalf("GenerateVoucher returned error: %v", err)
	}
	if len(voucher) == 0 || vName == "" {
		t.Fatalf("GenerateVoucher returned empty data")
	}
	if !bytes.HasPrefix(voucher, []byte("%PDF")) {
		t.Fatalf("voucher is not a PDF")
	}
}

func TestDocsServiceOwnership(t *testing.T) {
	st := store.New(store.DefaultSeed())
	svc := DocsService{Store: st}

	// booking1 belongs to user1
	if _, _, err := svc.GenerateETicket("user2", "booking1"); !domain.IsNotFound(err) {
		t.Fatalf("foreign booking: expected not found, got %v", err)
	}
	if _, _, err := svc.GenerateETicket("user1", "booking1"); err != nil {
		t.Fatalf("own booking: %v", err)
	}
}

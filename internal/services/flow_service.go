package services

import (
	"fmt"
	"strings"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/mail"
	"travelbook/internal/store"
	"travelbook/internal/utils"
)

// paymentDelay models the original client's simulated gateway latency.
const paymentDelay = 3 * time.Second

// PaymentDetails carries the method-specific fields collected by the payment
// form. Only the fields for the chosen method are validated.
type PaymentDetails struct {
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardCVV    string `json:"card_cvv"`
	CardName   string `json:"card_name"`
	UPIID      string `json:"upi_id"`
	Bank       string `json:"bank"`
	Provider   string `json:"provider"`
}

// TravelBookingInput is everything BookTravel needs, resolved by the caller.
type TravelBookingInput struct {
	UserID         string
	TravelOptionID string
	Passengers     []models.Passenger
	SeatNumbers    []string
	Method         string
	Details        PaymentDetails
}

// HotelBookingInput is everything BookHotel needs.
type HotelBookingInput struct {
	UserID       string
	HotelID      string
	CheckInDate  string
	CheckOutDate string
	Guests       int
	Rooms        int
	GuestDetails models.GuestDetails
	Method       string
	Details      PaymentDetails
}

// FlowService drives the end-to-end booking flow: authorization gate,
// validation, simulated payment processing, and record creation. It composes
// BookingService rather than touching the store for writes directly.
type FlowService struct {
	Store    *store.Store
	Bookings BookingService
	Mailer   *mail.Mailer

	// Sleep and Now are swapped out in tests.
	Sleep func(time.Duration)
	Now   func() time.Time
}

func (s FlowService) sleep(d time.Duration) {
	if s.Sleep != nil {
		s.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (s FlowService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// BookTravel books seats on a travel option and records the payment. The
// booking is created confirmed with a placeholder payment id; the payment
// record carries the real transaction id.
func (s FlowService) BookTravel(requestID string, in TravelBookingInput) (models.Booking, models.Payment, error) {
	user, err := s.requireUser(in.UserID)
	if err != nil {
		return models.Booking{}, models.Payment{}, err
	}
	opt, err := s.Store.TravelOptionByID(in.TravelOptionID)
	if err != nil {
		return models.Booking{}, models.Payment{}, err
	}
	if len(in.Passengers) == 0 {
		return models.Booking{}, models.Payment{}, domain.ValidationError{Field: "passengers", Msg: "at least one passenger is required"}
	}
	if err := validatePaymentDetails(in.Method, in.Details); err != nil {
		return models.Booking{}, models.Payment{}, err
	}

	quote := utils.TravelQuote(opt.Price, len(in.Passengers))

	utils.LogEvent(requestID, "flow", "book_travel", "processing payment for "+in.TravelOptionID)
	s.sleep(paymentDelay)

	booking := s.Bookings.CreateBooking(models.Booking{
		UserID:         user.ID,
		TravelOptionID: opt.ID,
		Passengers:     in.Passengers,
		SeatNumbers:    in.SeatNumbers,
		TotalAmount:    quote.FinalAmount,
		Status:         models.StatusConfirmed,
		PaymentID:      "temp",
	})
	payment := s.Bookings.CreatePayment(models.Payment{
		BookingID:     booking.ID,
		Amount:        quote.FinalAmount,
		Method:        in.Method,
		Status:        models.PaymentSuccess,
		TransactionID: fmt.Sprintf("TXN%d", s.now().UnixMilli()),
	})

	s.notify(requestID, user, booking.ID, quote.FinalAmount)
	return booking, payment, nil
}

// BookHotel books rooms for a stay and records the payment. Both dates are
// required and checkout must fall after checkin.
func (s FlowService) BookHotel(requestID string, in HotelBookingInput) (models.HotelBooking, models.Payment, error) {
	user, err := s.requireUser(in.UserID)
	if err != nil {
		return models.HotelBooking{}, models.Payment{}, err
	}
	hotel, err := s.Store.HotelByID(in.HotelID)
	if err != nil {
		return models.HotelBooking{}, models.Payment{}, err
	}

	checkIn, checkOut, err := parseStayDates(in.CheckInDate, in.CheckOutDate)
	if err != nil {
		return models.HotelBooking{}, models.Payment{}, err
	}
	if in.Rooms <= 0 {
		return models.HotelBooking{}, models.Payment{}, domain.ValidationError{Field: "rooms", Msg: "at least one room is required"}
	}
	if err := validatePaymentDetails(in.Method, in.Details); err != nil {
		return models.HotelBooking{}, models.Payment{}, err
	}

	nights := utils.NightsBetween(checkIn, checkOut)
	quote := utils.HotelQuote(hotel.Price, nights, in.Rooms)

	utils.LogEvent(requestID, "flow", "book_hotel", "processing payment for "+in.HotelID)
	s.sleep(paymentDelay)

	booking := s.Bookings.CreateHotelBooking(models.HotelBooking{
		UserID:       user.ID,
		HotelID:      hotel.ID,
		CheckInDate:  utils.FormatDate(checkIn),
		CheckOutDate: utils.FormatDate(checkOut),
		Guests:       in.Guests,
		Rooms:        in.Rooms,
		TotalAmount:  quote.FinalAmount,
		Status:       models.StatusConfirmed,
		PaymentID:    "temp",
		GuestDetails: in.GuestDetails,
	})
	payment := s.Bookings.CreatePayment(models.Payment{
		BookingID:     booking.ID,
		Amount:        quote.FinalAmount,
		Method:        in.Method,
		Status:        models.PaymentSuccess,
		TransactionID: fmt.Sprintf("HTL%d", s.now().UnixMilli()),
	})

	s.notify(requestID, user, booking.ID, quote.FinalAmount)
	return booking, payment, nil
}

func (s FlowService) requireUser(userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, domain.UnauthorizedError{Msg: "login required to book"}
	}
	user, err := s.Store.UserByID(userID)
	if err != nil {
		return models.User{}, domain.UnauthorizedError{Msg: "login required to book", Err: err}
	}
	return user, nil
}

func (s FlowService) notify(requestID string, user models.User, bookingID string, amount int64) {
	if !s.Mailer.Enabled() {
		return
	}
	if err := s.Mailer.SendBookingConfirmation(user.Email, user.Name, bookingID, utils.FormatRupees(amount)); err != nil {
		utils.LogEvent(requestID, "flow", "notify", "confirmation mail failed: "+err.Error())
	}
}

func parseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	if strings.TrimSpace(checkIn) == "" || strings.TrimSpace(checkOut) == "" {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "dates", Msg: "check-in and check-out dates are required"}
	}
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "check_in_date", Msg: "invalid date, expected YYYY-MM-DD", Err: err}
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "check_out_date", Msg: "invalid date, expected YYYY-MM-DD", Err: err}
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, domain.ValidationError{Field: "check_out_date", Msg: "check-out must be after check-in"}
	}
	return in, out, nil
}

func validatePaymentDetails(method string, d PaymentDetails) error {
	switch method {
	case models.MethodCard:
		if anyBlank(d.CardNumber, d.CardExpiry, d.CardCVV, d.CardName) {
			return domain.ValidationError{Field: "payment_details", Msg: "card number, expiry, cvv and name are required"}
		}
	case models.MethodUPI:
		if anyBlank(d.UPIID) {
			return domain.ValidationError{Field: "payment_details", Msg: "upi id is required"}
		}
	case models.MethodNetbanking:
		if anyBlank(d.Bank) {
			return domain.ValidationError{Field: "payment_details", Msg: "bank selection is required"}
		}
	case models.MethodWallet:
		if anyBlank(d.Provider) {
			return domain.ValidationError{Field: "payment_details", Msg: "wallet provider is required"}
		}
	default:
		return domain.ValidationError{Field: "method", Msg: "unknown payment method"}
	}
	return nil
}

func anyBlank(vals ...string) bool {
	for _, v := range vals {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

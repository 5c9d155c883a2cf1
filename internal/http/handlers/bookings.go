package handlers

import (
	"net/http"

	"travelbook/internal/domain/models"
	"travelbook/internal/http/middleware"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
)

type travelBookingRequest struct {
	TravelOptionID string                  `json:"travel_option_id"`
	Passengers     []models.Passenger      `json:"passengers"`
	SeatNumbers    []string                `json:"seat_numbers"`
	PaymentMethod  string                  `json:"payment_method"`
	PaymentDetails services.PaymentDetails `json:"payment_details"`
}

// POST /api/bookings
func (h Handler) CreateBooking(c *gin.Context) {
	var req travelBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, payment, err := h.Flow.BookTravel(middleware.GetRequestID(c), services.TravelBookingInput{
		UserID:         middleware.GetUserID(c),
		TravelOptionID: req.TravelOptionID,
		Passengers:     req.Passengers,
		SeatNumbers:    req.SeatNumbers,
		Method:         req.PaymentMethod,
		Details:        req.PaymentDetails,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking": booking,
		"payment": payment,
	})
}

type hotelBookingRequest struct {
	HotelID        string                  `json:"hotel_id"`
	CheckInDate    string                  `json:"check_in_date"`
	CheckOutDate   string                  `json:"check_out_date"`
	Guests         int                     `json:"guests"`
	Rooms          int                     `json:"rooms"`
	GuestDetails   models.GuestDetails     `json:"guest_details"`
	PaymentMethod  string                  `json:"payment_method"`
	PaymentDetails services.PaymentDetails `json:"payment_details"`
}

// POST /api/hotel-bookings
func (h Handler) CreateHotelBooking(c *gin.Context) {
	var req hotelBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	booking, payment, err := h.Flow.BookHotel(middleware.GetRequestID(c), services.HotelBookingInput{
		UserID:       middleware.GetUserID(c),
		HotelID:      req.HotelID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Guests:       req.Guests,
		Rooms:        req.Rooms,
		GuestDetails: req.GuestDetails,
		Method:       req.PaymentMethod,
		Details:      req.PaymentDetails,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking": booking,
		"payment": payment,
	})
}

// GET /api/bookings
func (h Handler) ListBookings(c *gin.Context) {
	userID := middleware.GetUserID(c)
	c.JSON(http.StatusOK, gin.H{
		"bookings":       h.Store.BookingsByUser(userID),
		"hotel_bookings": h.Store.HotelBookingsByUser(userID),
	})
}

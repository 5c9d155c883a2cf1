package handlers

import (
	"net/http"
	"strings"

	"travelbook/internal/http/middleware"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings/:id/e-ticket (inline PDF)
func (h Handler) GetETicketPDF(c *gin.Context) {
	bookingID := strings.TrimSpace(c.Param("id"))
	if bookingID == "" {
		respondError(c, http.StatusBadRequest, "invalid_booking_id", "booking id is required", nil)
		return
	}

	svc := services.DocsService{
		Store:     h.Store,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateETicket(middleware.GetUserID(c), bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/hotel-bookings/:id/voucher (inline PDF)
func (h Handler) GetVoucherPDF(c *gin.Context) {
	bookingID := strings.TrimSpace(c.Param("id"))
	if bookingID == "" {
		respondError(c, http.StatusBadRequest, "invalid_booking_id", "booking id is required", nil)
		return
	}

	svc := services.DocsService{
		Store:     h.Store,
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateVoucher(middleware.GetUserID(c), bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/store"
	"travelbook/internal/utils"
)

// DocsService renders booking documents as PDFs.
type DocsService struct {
	Store     *store.Store
	RequestID string

	// TravelLoader and HotelLoader are swapped for fakes in tests.
	TravelLoader func(string) (travelDocData, error)
	HotelLoader  func(string) (hotelDocData, error)
}

type travelDocData struct {
	BookingID   string
	Status      string
	Type        string
	Operator    string
	From        string
	To          string
	Departure   time.Time
	Arrival     time.Time
	Passengers  []models.Passenger
	SeatNumbers []string
	TotalAmount int64
}

type hotelDocData struct {
	BookingID   string
	Status      string
	HotelName   string
	Location    string
	City        string
	RoomType    string
	CheckIn     string
	CheckOut    string
	Guests      int
	Rooms       int
	GuestName   string
	GuestPhone  string
	TotalAmount int64
}

// GenerateETicket renders the e-ticket for a travel booking. Only the owning
// user may fetch it.
func (s DocsService) GenerateETicket(userID, bookingID string) ([]byte, string, error) {
	data, err := s.loadTravelDocData(userID, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "booking_id="+bookingID)
	return buildETicketPDF(data)
}

// GenerateVoucher renders the stay voucher for a hotel booking.
func (s DocsService) GenerateVoucher(userID, bookingID string) ([]byte, string, error) {
	data, err := s.loadHotelDocData(userID, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", "booking_id="+bookingID)
	return buildVoucherPDF(data)
}

func (s DocsService) loadTravelDocData(userID, bookingID string) (travelDocData, error) {
	if s.TravelLoader != nil {
		return s.TravelLoader(bookingID)
	}
	var out travelDocData
	b, err := s.Store.BookingByID(bookingID)
	if err != nil {
		return out, err
	}
	if b.UserID != userID {
		return out, domain.NotFoundError{Resource: "booking"}
	}
	out.BookingID = b.ID
	out.Status = b.Status
	out.Passengers = b.Passengers
	out.SeatNumbers = b.SeatNumbers
	out.TotalAmount = b.TotalAmount

	if opt, err := s.Store.TravelOptionByID(b.TravelOptionID); err == nil {
		out.Type = opt.Type
		out.Operator = opt.Operator
		out.From = opt.From
		out.To = opt.To
		out.Departure = opt.Departure
		out.Arrival = opt.Arrival
	}
	return out, nil
}

func (s DocsService) loadHotelDocData(userID, bookingID string) (hotelDocData, error) {
	if s.HotelLoader != nil {
		return s.HotelLoader(bookingID)
	}
	var out hotelDocData
	hb, err := s.Store.HotelBookingByID(bookingID)
	if err != nil {
		return out, err
	}
	if hb.UserID != userID {
		return out, domain.NotFoundError{Resource: "hotel booking"}
	}
	out.BookingID = hb.ID
	out.Status = hb.Status
	out.CheckIn = hb.CheckInDate
	out.CheckOut = hb.CheckOutDate
	out.Guests = hb.Guests
	out.Rooms = hb.Rooms
	out.GuestName = hb.GuestDetails.Name
	out.GuestPhone = hb.GuestDetails.Phone
	out.TotalAmount = hb.TotalAmount

	if h, err := s.Store.HotelByID(hb.HotelID); err == nil {
		out.HotelName = h.Name
		out.Location = h.Location
		out.City = h.City
		out.RoomType = h.RoomType
	}
	return out, nil
}

func buildETicketPDF(d travelDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	lead := ""
	if len(d.Passengers) > 0 {
		lead = d.Passengers[0].Name
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref   : %s", safe(d.BookingID, "-")),
		fmt.Sprintf("Status        : %s", safe(strings.ToUpper(d.Status), "-")),
		fmt.Sprintf("Service       : %s (%s)", safe(d.Operator, "-"), safe(d.Type, "-")),
		fmt.Sprintf("Route         : %s -> %s", safe(d.From, "-"), safe(d.To, "-")),
		fmt.Sprintf("Departure     : %s", formatWhen(d.Departure)),
		fmt.Sprintf("Arrival       : %s", formatWhen(d.Arrival)),
		fmt.Sprintf("Lead Passenger: %s", safe(lead, "-")),
		fmt.Sprintf("Passengers    : %d", len(d.Passengers)),
		fmt.Sprintf("Seats         : %s", safe(strings.Join(d.SeatNumbers, ", "), "-")),
		fmt.Sprintf("Amount Paid   : %s", utils.FormatRupees(d.TotalAmount)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if len(d.Passengers) > 1 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Passenger list:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for i, p := range d.Passengers {
			pdf.Cell(0, 6, fmt.Sprintf("%d) %s, age %d", i+1, safe(p.Name, "-"), p.Age))
			pdf.Ln(6)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry a valid photo ID for every passenger. Show this e-ticket at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(d.BookingID))
	return buf.Bytes(), filename, nil
}

func buildVoucherPDF(d hotelDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Hotel Voucher", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "HOTEL VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Voucher No  : VCH-"+safeFilenamePart(d.BookingID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued      : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Stay details:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Hotel       : %s", safe(d.HotelName, "-")),
		fmt.Sprintf("Location    : %s, %s", safe(d.Location, "-"), safe(d.City, "-")),
		fmt.Sprintf("Room Type   : %s", safe(d.RoomType, "-")),
		fmt.Sprintf("Check-in    : %s", safe(d.CheckIn, "-")),
		fmt.Sprintf("Check-out   : %s", safe(d.CheckOut, "-")),
		fmt.Sprintf("Guests      : %d", d.Guests),
		fmt.Sprintf("Rooms       : %d", d.Rooms),
		fmt.Sprintf("Guest Name  : %s", safe(d.GuestName, "-")),
		fmt.Sprintf("Guest Phone : %s", safe(d.GuestPhone, "-")),
		fmt.Sprintf("Status      : %s", safe(strings.ToUpper(d.Status), "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total Paid: "+utils.FormatRupees(d.TotalAmount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Present this voucher with a photo ID at the front desk on arrival.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%s.pdf", safeFilenamePart(d.BookingID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func formatWhen(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

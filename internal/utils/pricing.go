package utils

import "math"

// taxRate is the flat GST-style rate applied to every booking.
const taxRate = 0.12

// Quote carries the derived amounts for a booking payment.
type Quote struct {
	BaseAmount  int64 `json:"base_amount"`
	Taxes       int64 `json:"taxes"`
	FinalAmount int64 `json:"final_amount"`
}

func quoteFromBase(base int64) Quote {
	taxes := int64(math.Round(float64(base) * taxRate))
	return Quote{
		BaseAmount:  base,
		Taxes:       taxes,
		FinalAmount: base + taxes,
	}
}

// TravelQuote prices a travel booking: price per seat times passenger count,
// plus taxes.
func TravelQuote(pricePerSeat int64, passengers int) Quote {
	return quoteFromBase(pricePerSeat * int64(passengers))
}

// HotelQuote prices a hotel stay: price per night times nights times rooms,
// plus taxes.
func HotelQuote(pricePerNight int64, nights, rooms int) Quote {
	return quoteFromBase(pricePerNight * int64(nights) * int64(rooms))
}

package models

import "time"

// Travel option types.
const (
	TravelTrain  = "train"
	TravelBus    = "bus"
	TravelFlight = "flight"
)

// TravelOption is a read-only catalog entry for a train/bus/flight departure.
type TravelOption struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Departure time.Time `json:"departure"`
	Arrival   time.Time `json:"arrival"`
	Price     int64     `json:"price"`
	Operator  string    `json:"operator"`
	Seats     int       `json:"seats"`
	Amenities []string  `json:"amenities"`
	Rating    float64   `json:"rating"`
	Duration  string    `json:"duration"`
	Stops     []string  `json:"stops,omitempty"`
}

package models

// Hotel is a catalog entry. AvailableRooms is the only mutable field and is
// decremented on every successful hotel booking.
type Hotel struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	City           string   `json:"city"`
	Price          int64    `json:"price"` // per night
	Rating         float64  `json:"rating"`
	Images         []string `json:"images"`
	Amenities      []string `json:"amenities"`
	RoomType       string   `json:"room_type"`
	AvailableRooms int      `json:"available_rooms"`
	Description    string   `json:"description"`
	CheckIn        string   `json:"check_in"`  // display label, e.g. "2:00 PM"
	CheckOut       string   `json:"check_out"` // display label, e.g. "11:00 AM"
	Latitude       float64  `json:"latitude,omitempty"`
	Longitude      float64  `json:"longitude,omitempty"`
}

package store

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"travelbook/internal/domain/models"
)

// mustHash hashes fixture passwords at seed time. MinCost keeps startup and
// tests fast; real signups go through the session service with the default cost.
func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// DefaultSeed returns the demo fixture catalog the store is seeded with at
// process start.
func DefaultSeed() Seed {
	return Seed{
		Users: []models.User{
			{
				ID:         "user1",
				Email:      "john@example.com",
				Password:   mustHash("password123"),
				Name:       "John Doe",
				Phone:      "+91 9876543210",
				Avatar:     "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150",
				CreatedAt:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				BookingIDs: []string{"booking1", "booking2"},
			},
			{
				ID:         "user2",
				Email:      "jane@example.com",
				Password:   mustHash("password456"),
				Name:       "Jane Smith",
				Phone:      "+91 9876543211",
				Avatar:     "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150",
				CreatedAt:  time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
				BookingIDs: []string{"booking3"},
			},
		},
		TravelOptions: []models.TravelOption{
			{
				ID:        "train1",
				Type:      models.TravelTrain,
				From:      "Delhi",
				To:        "Mumbai",
				Departure: time.Date(2024, 12, 25, 6, 0, 0, 0, time.Local),
				Arrival:   time.Date(2024, 12, 25, 22, 30, 0, 0, time.Local),
				Price:     1250,
				Operator:  "Rajdhani Express",
				Seats:     45,
				Amenities: []string{"AC", "Meals", "WiFi", "Charging Points"},
				Rating:    4.5,
				Duration:  "16h 30m",
				Stops:     []string{"Kota", "Vadodara", "Surat"},
			},
			{
				ID:        "train2",
				Type:      models.TravelTrain,
				From:      "Bangalore",
				To:        "Chennai",
				Departure: time.Date(2024, 12, 25, 14, 15, 0, 0, time.Local),
				Arrival:   time.Date(2024, 12, 25, 19, 45, 0, 0, time.Local),
				Price:     680,
				Operator:  "Shatabdi Express",
				Seats:     62,
				Amenities: []string{"AC", "Meals", "WiFi"},
				Rating:    4.3,
				Duration:  "5h 30m",
				Stops:     []string{"Hosur", "Krishnagiri"},
			},
			{
				ID:        "bus1",
				Type:      models.TravelBus,
				From:      "Delhi",
				To:        "Manali",
				Departure: time.Date(2024, 12, 25, 22, 0, 0, 0, time.Local),
				Arrival:   time.Date(2024, 12, 26, 10, 0, 0, 0, time.Local),
				Price:     950,
				Operator:  "RedBus Travels",
				Seats:     28,
				Amenities: []string{"AC", "Sleeper", "Entertainment", "Blanket"},
				Rating:    4.2,
				Duration:  "12h 00m",
				Stops:     []string{"Chandigarh", "Kullu"},
			},
			{
				ID:        "bus2",
				Type:      models.TravelBus,
				From:      "Mumbai",
				To:        "Goa",
				Departure: time.Date(2024, 12, 25, 23, 30, 0, 0, time.Local),
				Arrival:   time.Date(2024, 12, 26, 9, 30, 0, 0, time.Local),
				Price:     750,
				Operator:  "SRS Travels",
				Seats:     35,
				Amenities: []string{"AC", "Semi-Sleeper", "Water Bottle"},
				Rating:    4.0,
				Duration:  "10h 00m",
				Stops:     []string{"Pune", "Kolhapur"},
			},
			{
				ID:        "flight1",
				Type:      models.TravelFlight,
				From:      "Delhi",
				To:        "Mumbai",
				Departure: time.Date(2024, 12, 25, 8, 30, 0, 0, time.Local),
				Arrival:   time.Date(2024, 12, 25, 10, 45, 0, 0, time.Local),
				Price:     4500,
				Operator:  "IndiGo",
				Seats:     180,
				Amenities: []string{"In-flight Entertainment", "Meals", "WiFi"},
				Rating:    4.4,
				Duration:  "2h 15m",
			},
			{
				ID:        "flight2",
				Type:      models.TravelFlight,
				From:      "Bangalore",
				To:        "Delhi",
				Departure: time.Date(2024, 12, 25, 15, 20, 0, 0, time.Local),
				Arrival:   time.Date(2024, 12, 25, 18, 10, 0, 0, time.Local),
				Price:     5200,
				Operator:  "Air India",
				Seats:     150,
				Amenities: []string{"In-flight Entertainment", "Meals", "Extra Legroom"},
				Rating:    4.1,
				Duration:  "2h 50m",
			},
		},
		Hotels: []models.Hotel{
			{
				ID:             "hotel1",
				Name:           "Taj Beach Resort",
				Location:       "Calangute",
				City:           "Goa",
				Price:          4500,
				Rating:         4.6,
				Images:         []string{"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=600"},
				Amenities:      []string{"Pool", "Beach Access", "Spa", "WiFi", "Breakfast"},
				RoomType:       "Deluxe Sea View",
				AvailableRooms: 8,
				Description:    "Beachfront resort with private access to Calangute beach.",
				CheckIn:        "2:00 PM",
				CheckOut:       "11:00 AM",
				Latitude:       15.5439,
				Longitude:      73.7553,
			},
			{
				ID:             "hotel2",
				Name:           "Goa Backpacker Stay",
				Location:       "Anjuna",
				City:           "Goa",
				Price:          1200,
				Rating:         4.0,
				Images:         []string{"https://images.unsplash.com/photo-1555854877-bab0e564b8d5?w=600"},
				Amenities:      []string{"WiFi", "Common Kitchen", "Lockers"},
				RoomType:       "Standard Twin",
				AvailableRooms: 1,
				Description:    "Budget stay minutes from the Anjuna flea market.",
				CheckIn:        "12:00 PM",
				CheckOut:       "10:00 AM",
				Latitude:       15.5752,
				Longitude:      73.7407,
			},
			{
				ID:             "hotel3",
				Name:           "The Imperial Palace",
				Location:       "Connaught Place",
				City:           "Delhi",
				Price:          8000,
				Rating:         4.8,
				Images:         []string{"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=600"},
				Amenities:      []string{"Pool", "Gym", "Spa", "WiFi", "Restaurant", "Bar"},
				RoomType:       "Executive Suite",
				AvailableRooms: 12,
				Description:    "Heritage luxury hotel in the heart of New Delhi.",
				CheckIn:        "2:00 PM",
				CheckOut:       "12:00 PM",
				Latitude:       28.6315,
				Longitude:      77.2167,
			},
			{
				ID:             "hotel4",
				Name:           "Marine Drive Grand",
				Location:       "Nariman Point",
				City:           "Mumbai",
				Price:          5500,
				Rating:         4.4,
				Images:         []string{"https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=600"},
				Amenities:      []string{"Sea View", "Gym", "WiFi", "Restaurant"},
				RoomType:       "Premium King",
				AvailableRooms: 10,
				Description:    "Business hotel overlooking the Queen's Necklace.",
				CheckIn:        "3:00 PM",
				CheckOut:       "11:00 AM",
				Latitude:       18.9256,
				Longitude:      72.8242,
			},
			{
				ID:             "hotel5",
				Name:           "Backwater Retreat",
				Location:       "Kumarakom",
				City:           "Kerala",
				Price:          3200,
				Rating:         4.5,
				Images:         []string{"https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?w=600"},
				Amenities:      []string{"Houseboat", "Ayurveda Spa", "WiFi", "Breakfast"},
				RoomType:       "Lake View Cottage",
				AvailableRooms: 6,
				Description:    "Cottages on the Vembanad lake backwaters.",
				CheckIn:        "1:00 PM",
				CheckOut:       "11:00 AM",
				Latitude:       9.6177,
				Longitude:      76.4274,
			},
			{
				ID:             "hotel6",
				Name:           "Heritage Haveli",
				Location:       "Pink City",
				City:           "Jaipur",
				Price:          2800,
				Rating:         4.3,
				Images:         []string{"https://images.unsplash.com/photo-1477587458883-47145ed94245?w=600"},
				Amenities:      []string{"Courtyard", "Rooftop Restaurant", "WiFi"},
				RoomType:       "Royal Room",
				AvailableRooms: 9,
				Description:    "Restored haveli near Hawa Mahal.",
				CheckIn:        "12:00 PM",
				CheckOut:       "10:00 AM",
				Latitude:       26.9239,
				Longitude:      75.8267,
			},
		},
		Bookings: []models.Booking{
			{
				ID:             "booking1",
				UserID:         "user1",
				TravelOptionID: "train1",
				Passengers: []models.Passenger{
					{Name: "John Doe", Age: 30, Gender: "male", IDType: "aadhar", IDNumber: "1234-5678-9012"},
				},
				TotalAmount: 1250,
				Status:      models.StatusConfirmed,
				PaymentID:   "payment1",
				CreatedAt:   time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
				SeatNumbers: []string{"A1"},
			},
		},
		Payments: []models.Payment{
			{
				ID:            "payment1",
				BookingID:     "booking1",
				Amount:        1250,
				Method:        models.MethodCard,
				Status:        models.PaymentSuccess,
				TransactionID: "TXN123456789",
				CreatedAt:     time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

// PopularDestinations is the static destination strip shown on the landing
// search page.
type Destination struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Price int64  `json:"price"`
}

func PopularDestinations() []Destination {
	return []Destination{
		{Name: "Goa", Image: "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?w=300", Price: 2500},
		{Name: "Kerala", Image: "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?w=300", Price: 3200},
		{Name: "Rajasthan", Image: "https://images.unsplash.com/photo-1477587458883-47145ed94245?w=300", Price: 2800},
		{Name: "Himachal", Image: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300", Price: 3500},
		{Name: "Kashmir", Image: "https://images.unsplash.com/photo-1506197603052-3cc9c3a201bd?w=300", Price: 4200},
		{Name: "Andaman", Image: "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=300", Price: 5500},
	}
}

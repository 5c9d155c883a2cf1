package models

import "time"

// User is an account record. Password holds a bcrypt hash and is never serialized.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Avatar     string    `json:"avatar,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	BookingIDs []string  `json:"booking_ids"`
}

// SignupData carries the fields collected by the signup form.
type SignupData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

package domain

import "time"

// Service represents an entry in the service catalog
type Service struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice"`
	Duration      int       `json:"duration"` // minutes
	Category      string    `json:"category"`
	Benefits      []string  `json:"benefits"`
	Image         string    `json:"image"` // stored filename or URL, upload handled elsewhere
	Availability  string    `json:"availability"`
	Rating        float64   `json:"rating"`
	Reservations  int       `json:"reservations"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

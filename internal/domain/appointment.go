package domain

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// ValidAppointmentStatus reports whether s is a known status value
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return true
	}
	return false
}

// Appointment represents a booked appointment
type Appointment struct {
	ID         int64             `json:"id"`
	ClientName string            `json:"clientName"`
	Service    string            `json:"service"`
	Date       time.Time         `json:"date"`
	Time       string            `json:"time"`
	Duration   int               `json:"duration"` // minutes
	Price      float64           `json:"price"`
	Phone      string            `json:"phone"`
	Email      string            `json:"email"`
	Status     AppointmentStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

package dto

import (
	"time"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
)

// CreateAppointmentRequest represents a new appointment booking
type CreateAppointmentRequest struct {
	ClientName string  `json:"clientName" binding:"required,min=2"`
	Service    string  `json:"service" binding:"required"`
	Date       string  `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string  `json:"time" binding:"required"` // HH:MM
	Duration   int     `json:"duration" binding:"required,gt=0"`
	Price      float64 `json:"price" binding:"gte=0"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email" binding:"omitempty,email"`
	Status     string  `json:"status"`
}

// UpdateAppointmentRequest represents a partial appointment update.
// Pointer fields distinguish "absent" from zero values.
type UpdateAppointmentRequest struct {
	ClientName *string  `json:"clientName" binding:"omitempty,min=2"`
	Service    *string  `json:"service"`
	Date       *string  `json:"date"`
	Time       *string  `json:"time"`
	Duration   *int     `json:"duration" binding:"omitempty,gt=0"`
	Price      *float64 `json:"price" binding:"omitempty,gte=0"`
	Phone      *string  `json:"phone"`
	Email      *string  `json:"email" binding:"omitempty,email"`
	Status     *string  `json:"status"`
}

// UpdateStatusRequest changes only the appointment status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ToAppointment converts the create request to a domain appointment
func (r *CreateAppointmentRequest) ToAppointment() (*domain.Appointment, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, domain.ErrMissingFields
	}

	status := domain.AppointmentStatus(r.Status)
	if r.Status == "" {
		status = domain.AppointmentPending
	}
	if !domain.ValidAppointmentStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	return &domain.Appointment{
		ClientName: r.ClientName,
		Service:    r.Service,
		Date:       date,
		Time:       r.Time,
		Duration:   r.Duration,
		Price:      r.Price,
		Phone:      r.Phone,
		Email:      r.Email,
		Status:     status,
	}, nil
}

// Apply merges the update request into an existing appointment
func (r *UpdateAppointmentRequest) Apply(appt *domain.Appointment) error {
	if r.ClientName != nil {
		appt.ClientName = *r.ClientName
	}
	if r.Service != nil {
		appt.Service = *r.Service
	}
	if r.Date != nil {
		date, err := time.Parse("2006-01-02", *r.Date)
		if err != nil {
			return domain.ErrMissingFields
		}
		appt.Date = date
	}
	if r.Time != nil {
		appt.Time = *r.Time
	}
	if r.Duration != nil {
		appt.Duration = *r.Duration
	}
	if r.Price != nil {
		appt.Price = *r.Price
	}
	if r.Phone != nil {
		appt.Phone = *r.Phone
	}
	if r.Email != nil {
		appt.Email = *r.Email
	}
	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		if !domain.ValidAppointmentStatus(status) {
			return domain.ErrInvalidStatus
		}
		appt.Status = status
	}
	return nil
}

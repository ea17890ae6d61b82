package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/dto"
	"github.com/Unsighted/Dashboard-backend/internal/repository"
	"github.com/Unsighted/Dashboard-backend/pkg/logger"
)

// AppointmentService defines the interface for appointment operations
type AppointmentService interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, status, date string) ([]*domain.Appointment, error)
	Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

type appointmentService struct {
	repo repository.AppointmentRepository
	log  *logger.Logger
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(repo repository.AppointmentRepository, log *logger.Logger) AppointmentService {
	return &appointmentService{repo: repo, log: log}
}

func (s *appointmentService) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*domain.Appointment, error) {
	appt, err := req.ToAppointment()
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.log.Info("appointment created",
		zap.Int64("appointment_id", appt.ID),
		zap.String("service", appt.Service),
	)
	return appt, nil
}

func (s *appointmentService) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrAppointmentNotFound
	}
	return appt, nil
}

// List filters by status and date when provided; both empty lists everything
func (s *appointmentService) List(ctx context.Context, status, date string) ([]*domain.Appointment, error) {
	switch {
	case status != "":
		st := domain.AppointmentStatus(status)
		if !domain.ValidAppointmentStatus(st) {
			return nil, domain.ErrInvalidStatus
		}
		return s.repo.ListByStatus(ctx, st)
	case date != "":
		return s.repo.ListByDate(ctx, date)
	default:
		return s.repo.List(ctx)
	}
}

func (s *appointmentService) Update(ctx context.Context, id int64, req *dto.UpdateAppointmentRequest) (*domain.Appointment, error) {
	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrAppointmentNotFound
	}

	if err := req.Apply(appt); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Appointment, error) {
	st := domain.AppointmentStatus(status)
	if !domain.ValidAppointmentStatus(st) {
		return nil, domain.ErrInvalidStatus
	}

	appt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrAppointmentNotFound
	}

	appt.Status = st
	if err := s.repo.Update(ctx, appt); err != nil {
		return nil, err
	}

	s.log.Info("appointment status changed",
		zap.Int64("appointment_id", appt.ID),
		zap.String("status", status),
	)
	return appt, nil
}

func (s *appointmentService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

package service

import (
	"context"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
)

// mockUserRepository is a map-backed UserRepository
type mockUserRepository struct {
	users       map[int64]*domain.User
	emailIndex  map[string]*domain.User
	nextID      int64
	createError error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:      make(map[int64]*domain.User),
		emailIndex: make(map[string]*domain.User),
		nextID:     1,
	}
}

func (r *mockUserRepository) add(user *domain.User) {
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users[user.ID] = user
	r.emailIndex[user.Email] = user
}

func (r *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if r.createError != nil {
		return r.createError
	}
	r.add(user)
	return nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.users[id], nil
}

func (r *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.emailIndex[email], nil
}

func (r *mockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.users[user.ID] = user
	r.emailIndex[user.Email] = user
	return nil
}

func (r *mockUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	user := r.users[id]
	if user == nil {
		return false, nil
	}
	delete(r.emailIndex, user.Email)
	delete(r.users, id)
	return true, nil
}

func (r *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, exists := r.emailIndex[email]
	return exists, nil
}

func (r *mockUserRepository) StoreRefreshToken(ctx context.Context, userID int64, token string) error {
	user := r.users[userID]
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.RefreshToken = &token
	return nil
}

func (r *mockUserRepository) RefreshTokenMatches(ctx context.Context, userID int64, token string) (bool, error) {
	user := r.users[userID]
	if user == nil || user.RefreshToken == nil {
		return false, nil
	}
	return *user.RefreshToken == token, nil
}

func (r *mockUserRepository) ClearRefreshToken(ctx context.Context, userID int64) error {
	if user := r.users[userID]; user != nil {
		user.RefreshToken = nil
	}
	return nil
}

// mockAppointmentRepository is a map-backed AppointmentRepository
type mockAppointmentRepository struct {
	appointments map[int64]*domain.Appointment
	nextID       int64
}

func newMockAppointmentRepository() *mockAppointmentRepository {
	return &mockAppointmentRepository{
		appointments: make(map[int64]*domain.Appointment),
		nextID:       1,
	}
}

func (r *mockAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	appt.ID = r.nextID
	r.nextID++
	r.appointments[appt.ID] = appt
	return nil
}

func (r *mockAppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.appointments[id], nil
}

func (r *mockAppointmentRepository) List(ctx context.Context) ([]*domain.Appointment, error) {
	var appts []*domain.Appointment
	for _, appt := range r.appointments {
		appts = append(appts, appt)
	}
	return appts, nil
}

func (r *mockAppointmentRepository) ListByStatus(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
	var appts []*domain.Appointment
	for _, appt := range r.appointments {
		if appt.Status == status {
			appts = append(appts, appt)
		}
	}
	return appts, nil
}

func (r *mockAppointmentRepository) ListByDate(ctx context.Context, date string) ([]*domain.Appointment, error) {
	var appts []*domain.Appointment
	for _, appt := range r.appointments {
		if appt.Date.Format("2006-01-02") == date {
			appts = append(appts, appt)
		}
	}
	return appts, nil
}

func (r *mockAppointmentRepository) Update(ctx context.Context, appt *domain.Appointment) error {
	r.appointments[appt.ID] = appt
	return nil
}

func (r *mockAppointmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := r.appointments[id]; !ok {
		return false, nil
	}
	delete(r.appointments, id)
	return true, nil
}

// mockServiceRepository is a map-backed ServiceRepository
type mockServiceRepository struct {
	services map[int64]*domain.Service
	nextID   int64
}

func newMockServiceRepository() *mockServiceRepository {
	return &mockServiceRepository{
		services: make(map[int64]*domain.Service),
		nextID:   1,
	}
}

func (r *mockServiceRepository) Create(ctx context.Context, svc *domain.Service) error {
	svc.ID = r.nextID
	r.nextID++
	r.services[svc.ID] = svc
	return nil
}

func (r *mockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return r.services[id], nil
}

func (r *mockServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	var services []*domain.Service
	for _, svc := range r.services {
		services = append(services, svc)
	}
	return services, nil
}

func (r *mockServiceRepository) ListByCategory(ctx context.Context, category string) ([]*domain.Service, error) {
	var services []*domain.Service
	for _, svc := range r.services {
		if svc.Category == category {
			services = append(services, svc)
		}
	}
	return services, nil
}

func (r *mockServiceRepository) Update(ctx context.Context, svc *domain.Service) error {
	r.services[svc.ID] = svc
	return nil
}

func (r *mockServiceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := r.services[id]; !ok {
		return false, nil
	}
	delete(r.services, id)
	return true, nil
}

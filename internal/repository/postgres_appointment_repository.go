package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
)

// PostgresAppointmentRepository implements AppointmentRepository using PostgreSQL
type PostgresAppointmentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAppointmentRepository creates a new PostgresAppointmentRepository
func NewPostgresAppointmentRepository(pool *pgxpool.Pool) *PostgresAppointmentRepository {
	return &PostgresAppointmentRepository{pool: pool}
}

const appointmentColumns = `id, client_name, service, date, time, duration, price, phone, email, status, created_at, updated_at`

func scanAppointment(row pgx.Row) (*domain.Appointment, error) {
	appt := &domain.Appointment{}
	err := row.Scan(
		&appt.ID,
		&appt.ClientName,
		&appt.Service,
		&appt.Date,
		&appt.Time,
		&appt.Duration,
		&appt.Price,
		&appt.Phone,
		&appt.Email,
		&appt.Status,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return appt, nil
}

func scanAppointments(rows pgx.Rows) ([]*domain.Appointment, error) {
	defer rows.Close()

	var appts []*domain.Appointment
	for rows.Next() {
		appt := &domain.Appointment{}
		err := rows.Scan(
			&appt.ID,
			&appt.ClientName,
			&appt.Service,
			&appt.Date,
			&appt.Time,
			&appt.Duration,
			&appt.Price,
			&appt.Phone,
			&appt.Email,
			&appt.Status,
			&appt.CreatedAt,
			&appt.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}
	return appts, rows.Err()
}

// Create creates a new appointment
func (r *PostgresAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	query := `
		INSERT INTO appointments (client_name, service, date, time, duration, price, phone, email, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		appt.ClientName,
		appt.Service,
		appt.Date,
		appt.Time,
		appt.Duration,
		appt.Price,
		appt.Phone,
		appt.Email,
		appt.Status,
	).Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt)
}

// GetByID retrieves an appointment by ID
func (r *PostgresAppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	return scanAppointment(r.pool.QueryRow(ctx, query, id))
}

// List retrieves all appointments, soonest first
func (r *PostgresAppointmentRepository) List(ctx context.Context) ([]*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY date, time`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanAppointments(rows)
}

// ListByStatus retrieves appointments in the given status
func (r *PostgresAppointmentRepository) ListByStatus(ctx context.Context, status domain.AppointmentStatus) ([]*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE status = $1 ORDER BY date, time`
	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	return scanAppointments(rows)
}

// ListByDate retrieves appointments on the given date (YYYY-MM-DD)
func (r *PostgresAppointmentRepository) ListByDate(ctx context.Context, date string) ([]*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE date = $1 ORDER BY time`
	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	return scanAppointments(rows)
}

// Update updates an appointment
func (r *PostgresAppointmentRepository) Update(ctx context.Context, appt *domain.Appointment) error {
	query := `
		UPDATE appointments
		SET client_name = $2, service = $3, date = $4, time = $5, duration = $6,
		    price = $7, phone = $8, email = $9, status = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.pool.QueryRow(ctx, query,
		appt.ID,
		appt.ClientName,
		appt.Service,
		appt.Date,
		appt.Time,
		appt.Duration,
		appt.Price,
		appt.Phone,
		appt.Email,
		appt.Status,
	).Scan(&appt.UpdatedAt)
}

// Delete deletes an appointment, reporting whether a row was removed
func (r *PostgresAppointmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

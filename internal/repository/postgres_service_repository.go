package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
)

// PostgresServiceRepository implements ServiceRepository using PostgreSQL.
// Benefits are stored as a text array column.
type PostgresServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresServiceRepository creates a new PostgresServiceRepository
func NewPostgresServiceRepository(pool *pgxpool.Pool) *PostgresServiceRepository {
	return &PostgresServiceRepository{pool: pool}
}

const serviceColumns = `id, name, price, original_price, duration, category, benefits, image, availability, rating, reservations, created_at, updated_at`

func scanService(row pgx.Row) (*domain.Service, error) {
	svc := &domain.Service{}
	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&svc.Price,
		&svc.OriginalPrice,
		&svc.Duration,
		&svc.Category,
		&svc.Benefits,
		&svc.Image,
		&svc.Availability,
		&svc.Rating,
		&svc.Reservations,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if svc.Benefits == nil {
		svc.Benefits = []string{}
	}
	return svc, nil
}

func scanServices(rows pgx.Rows) ([]*domain.Service, error) {
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		svc := &domain.Service{}
		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.Price,
			&svc.OriginalPrice,
			&svc.Duration,
			&svc.Category,
			&svc.Benefits,
			&svc.Image,
			&svc.Availability,
			&svc.Rating,
			&svc.Reservations,
			&svc.CreatedAt,
			&svc.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if svc.Benefits == nil {
			svc.Benefits = []string{}
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

// Create creates a new catalog entry
func (r *PostgresServiceRepository) Create(ctx context.Context, svc *domain.Service) error {
	query := `
		INSERT INTO services (name, price, original_price, duration, category, benefits, image, availability)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, rating, reservations, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		svc.Name,
		svc.Price,
		svc.OriginalPrice,
		svc.Duration,
		svc.Category,
		svc.Benefits,
		svc.Image,
		svc.Availability,
	).Scan(&svc.ID, &svc.Rating, &svc.Reservations, &svc.CreatedAt, &svc.UpdatedAt)
}

// GetByID retrieves a catalog entry by ID
func (r *PostgresServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	return scanService(r.pool.QueryRow(ctx, query, id))
}

// List retrieves all catalog entries
func (r *PostgresServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanServices(rows)
}

// ListByCategory retrieves catalog entries in the given category
func (r *PostgresServiceRepository) ListByCategory(ctx context.Context, category string) ([]*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE category = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	return scanServices(rows)
}

// Update updates a catalog entry
func (r *PostgresServiceRepository) Update(ctx context.Context, svc *domain.Service) error {
	query := `
		UPDATE services
		SET name = $2, price = $3, original_price = $4, duration = $5, category = $6,
		    benefits = $7, image = $8, availability = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.pool.QueryRow(ctx, query,
		svc.ID,
		svc.Name,
		svc.Price,
		svc.OriginalPrice,
		svc.Duration,
		svc.Category,
		svc.Benefits,
		svc.Image,
		svc.Availability,
	).Scan(&svc.UpdatedAt)
}

// Delete deletes a catalog entry, reporting whether a row was removed
func (r *PostgresServiceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

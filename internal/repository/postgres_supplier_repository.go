package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
)

// PostgresSupplierRepository implements SupplierRepository using PostgreSQL
type PostgresSupplierRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSupplierRepository creates a new PostgresSupplierRepository
func NewPostgresSupplierRepository(pool *pgxpool.Pool) *PostgresSupplierRepository {
	return &PostgresSupplierRepository{pool: pool}
}

const supplierColumns = `id, name, contact, phone, email, category, created_at, updated_at`

// Create creates a new supplier
func (r *PostgresSupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	query := `
		INSERT INTO suppliers (name, contact, phone, email, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		supplier.Name,
		supplier.Contact,
		supplier.Phone,
		supplier.Email,
		supplier.Category,
	).Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
}

// GetByID retrieves a supplier by ID
func (r *PostgresSupplierRepository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	supplier := &domain.Supplier{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&supplier.ID,
		&supplier.Name,
		&supplier.Contact,
		&supplier.Phone,
		&supplier.Email,
		&supplier.Category,
		&supplier.CreatedAt,
		&supplier.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return supplier, nil
}

// List retrieves all suppliers ordered by name
func (r *PostgresSupplierRepository) List(ctx context.Context) ([]*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*domain.Supplier
	for rows.Next() {
		supplier := &domain.Supplier{}
		err := rows.Scan(
			&supplier.ID,
			&supplier.Name,
			&supplier.Contact,
			&supplier.Phone,
			&supplier.Email,
			&supplier.Category,
			&supplier.CreatedAt,
			&supplier.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, rows.Err()
}

// Update updates a supplier
func (r *PostgresSupplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact = $3, phone = $4, email = $5, category = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.pool.QueryRow(ctx, query,
		supplier.ID,
		supplier.Name,
		supplier.Contact,
		supplier.Phone,
		supplier.Email,
		supplier.Category,
	).Scan(&supplier.UpdatedAt)
}

// Delete deletes a supplier, reporting whether a row was removed
func (r *PostgresSupplierRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

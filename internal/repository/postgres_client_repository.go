package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Unsighted/Dashboard-backend/internal/domain"
)

// PostgresClientRepository implements ClientRepository using PostgreSQL
type PostgresClientRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresClientRepository creates a new PostgresClientRepository
func NewPostgresClientRepository(pool *pgxpool.Pool) *PostgresClientRepository {
	return &PostgresClientRepository{pool: pool}
}

const clientColumns = `id, name, phone, email, address, created_at, updated_at`

// Create creates a new client
func (r *PostgresClientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (name, phone, email, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		client.Name,
		client.Phone,
		client.Email,
		client.Address,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
}

// GetByID retrieves a client by ID
func (r *PostgresClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	client := &domain.Client{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&client.ID,
		&client.Name,
		&client.Phone,
		&client.Email,
		&client.Address,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return client, nil
}

// List retrieves all clients ordered by name
func (r *PostgresClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		client := &domain.Client{}
		err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Phone,
			&client.Email,
			&client.Address,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

// Update updates a client
func (r *PostgresClientRepository) Update(ctx context.Context, client *domain.Client) error {
	query := `
		UPDATE clients
		SET name = $2, phone = $3, email = $4, address = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	return r.pool.QueryRow(ctx, query,
		client.ID,
		client.Name,
		client.Phone,
		client.Email,
		client.Address,
	).Scan(&client.UpdatedAt)
}

// Delete deletes a client, reporting whether a row was removed
func (r *PostgresClientRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

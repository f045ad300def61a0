// Copyright (c) 2026 audio-server. All rights reserved.

package customer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mfungorn/audio-server/internal/platform/apperr"
	"github.com/Mfungorn/audio-server/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed customer store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const customerColumns = `id, name, email, phone, balance, email_verified, password_hash, provider, provider_id`

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customer WHERE id = $1`

	account := &Customer{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&account.ID, &account.Name, &account.Email, &account.Phone, &account.Balance,
		&account.EmailVerified, &account.PasswordHash, &account.Provider, &account.ProviderID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundWith("Customer", "id", id)
	}
	return account, dberr.Wrap(err, "find_customer")
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customer WHERE email = $1`

	account := &Customer{}
	err := repository.pool.QueryRow(context, query, email).Scan(
		&account.ID, &account.Name, &account.Email, &account.Phone, &account.Balance,
		&account.EmailVerified, &account.PasswordHash, &account.Provider, &account.ProviderID,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundWith("Customer", "email", email)
	}
	return account, dberr.Wrap(err, "find_customer_by_email")
}

func (repository *PostgresRepository) ExistsByEmail(context context.Context, email string) (bool, error) {
	var exists bool
	err := repository.pool.QueryRow(context,
		`SELECT EXISTS (SELECT 1 FROM customer WHERE email = $1)`, email).Scan(&exists)
	return exists, dberr.Wrap(err, "customer_exists_by_email")
}

func (repository *PostgresRepository) Create(context context.Context, customer *Customer) error {
	query := `
		INSERT INTO customer (name, email, phone, balance, email_verified, password_hash, provider, provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := repository.pool.QueryRow(context, query,
		customer.Name, customer.Email, customer.Phone, customer.Balance,
		customer.EmailVerified, customer.PasswordHash, customer.Provider, customer.ProviderID,
	).Scan(&customer.ID)
	return dberr.Wrap(err, "create_customer")
}

func (repository *PostgresRepository) Update(context context.Context, customer *Customer) error {
	query := `
		UPDATE customer
		SET name = $2, phone = $3, balance = $4
		WHERE id = $1
	`
	tag, err := repository.pool.Exec(context, query,
		customer.ID, customer.Name, customer.Phone, customer.Balance)
	if err != nil {
		return dberr.Wrap(err, "update_customer")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundWith("Customer", "id", customer.ID)
	}
	return nil
}

func (repository *PostgresRepository) MarkVerified(context context.Context, id int64) error {
	tag, err := repository.pool.Exec(context,
		`UPDATE customer SET email_verified = TRUE WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "mark_customer_verified")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundWith("Customer", "id", id)
	}
	return nil
}

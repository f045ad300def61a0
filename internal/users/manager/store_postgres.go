// Copyright (c) 2026 audio-server. All rights reserved.

package manager

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

// NewPostgresRepository constructs a PostgreSQL backed manager store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Manager, error) {
	account := &Manager{}
	err := repository.pool.QueryRow(context,
		`SELECT id, name, email, password_hash, provider FROM manager WHERE id = $1`, id).
		Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.Provider)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundWith("Manager", "id", id)
	}
	return account, dberr.Wrap(err, "find_manager")
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*Manager, error) {
	account := &Manager{}
	err := repository.pool.QueryRow(context,
		`SELECT id, name, email, password_hash, provider FROM manager WHERE email = $1`, email).
		Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash, &account.Provider)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundWith("Manager", "email", email)
	}
	return account, dberr.Wrap(err, "find_manager_by_email")
}

func (repository *PostgresRepository) ExistsByEmail(context context.Context, email string) (bool, error) {
	var exists bool
	err := repository.pool.QueryRow(context,
		`SELECT EXISTS (SELECT 1 FROM manager WHERE email = $1)`, email).Scan(&exists)
	return exists, dberr.Wrap(err, "manager_exists_by_email")
}

func (repository *PostgresRepository) Create(context context.Context, manager *Manager) error {
	err := repository.pool.QueryRow(context,
		`INSERT INTO manager (name, email, password_hash, provider) VALUES ($1, $2, $3, $4) RETURNING id`,
		manager.Name, manager.Email, manager.PasswordHash, manager.Provider,
	).Scan(&manager.ID)
	return dberr.Wrap(err, "create_manager")
}

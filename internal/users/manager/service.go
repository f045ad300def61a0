// Copyright (c) 2026 audio-server. All rights reserved.

package manager

import (
	"context"
	"log/slog"

	"github.com/Mfungorn/audio-server/internal/platform/sec"
)

// Service implements manager account use cases.
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new manager [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// Get returns the manager entity for the authenticated admin.
func (service *Service) Get(context context.Context, id int64) (*Manager, error) {
	return service.repository.FindByID(context, id)
}

/*
EnsureAdmin seeds the configured administrator account at startup.

Description: Idempotent by email. When the account already exists nothing is
touched, so a changed ADMIN_PASSWORD only applies to fresh databases.

Parameters:
  - context: context.Context
  - name, email, password: the configured admin credentials

Returns:
  - error: Hashing or persistence failures
*/
func (service *Service) EnsureAdmin(context context.Context, name, email, password string) error {
	if email == "" || password == "" {
		service.logger.Warn("admin_seed_skipped_no_credentials")
		return nil
	}

	exists, err := service.repository.ExistsByEmail(context, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	passwordHash, err := sec.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &Manager{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Provider:     ProviderLocal,
	}
	if err := service.repository.Create(context, admin); err != nil {
		return err
	}

	service.logger.Info("admin_seeded", slog.String("email", email))
	return nil
}

// Copyright (c) 2026 audio-server. All rights reserved.

package manager

import "context"

// Repository defines the data access contract for manager accounts.
type Repository interface {

	/*
		FindByID returns the manager with the given ID.

		Returns:
		  - *Manager: Hydrated entity
		  - error: NOT_FOUND or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*Manager, error)

	/*
		FindByEmail returns the manager with the given email.

		Returns:
		  - *Manager: Hydrated entity
		  - error: NOT_FOUND or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Manager, error)

	/*
		ExistsByEmail reports whether a manager already uses the email.
	*/
	ExistsByEmail(context context.Context, email string) (bool, error)

	/*
		Create persists a brand-new manager account and backfills its ID.
	*/
	Create(context context.Context, manager *Manager) error
}

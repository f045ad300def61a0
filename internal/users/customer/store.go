// Copyright (c) 2026 audio-server. All rights reserved.

package customer

import "context"

// Repository defines the data access contract for customer accounts.
type Repository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *Customer: Hydrated entity
		  - error: NOT_FOUND or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*Customer, error)

	/*
		FindByEmail returns the account with the given email.

		Returns:
		  - *Customer: Hydrated entity
		  - error: NOT_FOUND or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Customer, error)

	/*
		ExistsByEmail reports whether an account already uses the email.
	*/
	ExistsByEmail(context context.Context, email string) (bool, error)

	/*
		Create persists a brand-new customer account and backfills its ID.
	*/
	Create(context context.Context, customer *Customer) error

	/*
		Update persists changes to the mutable profile fields (name, phone,
		balance). Email, credentials, and verification state move through
		their dedicated operations.
	*/
	Update(context context.Context, customer *Customer) error

	/*
		MarkVerified flips the account's email verification flag.
	*/
	MarkVerified(context context.Context, id int64) error
}

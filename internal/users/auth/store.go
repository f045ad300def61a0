// Copyright (c) 2026 audio-server. All rights reserved.

package auth

import (
	"context"
	"time"
)

// VerificationTokenRepository defines the storage contract for email
// verification tokens. Tokens are opaque random strings mapping back to the
// customer who must confirm the address, and they expire on their own.
type VerificationTokenRepository interface {

	/*
		Set stores a verification token with its customer and TTL.

		Parameters:
		  - context: context.Context
		  - token: string
		  - customerID: int64
		  - ttl: time.Duration

		Returns:
		  - error: Storage failures
	*/
	Set(context context.Context, token string, customerID int64, ttl time.Duration) error

	/*
		Get resolves a token back to its customer.

		Returns:
		  - int64: Customer ID
		  - error: NOT_FOUND when the token is absent or expired
	*/
	Get(context context.Context, token string) (int64, error)

	/*
		Delete removes a consumed token so the link is single-use.
	*/
	Delete(context context.Context, token string) error
}

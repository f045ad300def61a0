// Copyright (c) 2026 audio-server. All rights reserved.

/*
Package customer implements listener accounts and their profile surface.

A customer is the public-facing user of the platform: they register, verify
their email, keep a balance for purchases, and collect favorite authors and
compositions. Administrative staff live in the manager package instead and
never mix with this table.
*/
package customer

import "github.com/Mfungorn/audio-server/internal/catalog"

// Provider identifies how an account authenticates.
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// Customer represents a registered listener account.
type Customer struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Balance       int    `json:"balance"`
	EmailVerified bool   `json:"emailVerified"`

	// PasswordHash is empty for external-provider accounts.
	PasswordHash string `json:"-"`

	// Provider and ProviderID identify the external identity for OAuth
	// accounts; Provider is [ProviderLocal] for password accounts.
	Provider   string `json:"-"`
	ProviderID string `json:"-"`
}

// ProfilePayload is the response shape for GET /user/profile: the account
// fields a customer manages themselves plus their favorite tracks.
type ProfilePayload struct {
	Name                 string                       `json:"name"`
	Email                string                       `json:"email"`
	Phone                string                       `json:"phone"`
	Balance              int                          `json:"balance"`
	FavoriteCompositions []catalog.CompositionPayload `json:"favoriteCompositions"`
}

// Copyright (c) 2026 audio-server. All rights reserved.

/*
Package manager implements administrative staff accounts.

Managers authenticate through the dedicated admin login and carry the ADMIN
role in their tokens, which unlocks the catalog management endpoints. They are
stored apart from customers so the two account kinds can never shadow each
other by email.
*/
package manager

// ProviderLocal marks a manager authenticating with a locally stored
// password hash. Federated manager identities are modeled but not issued.
const ProviderLocal = "local"

// Manager represents an administrative staff account.
type Manager struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Provider     string `json:"-"`
}

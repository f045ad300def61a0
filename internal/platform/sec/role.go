// Copyright (c) 2026 audio-server. All rights reserved.

package sec

// # Principal Roles

// Role represents the authorization level granted to a principal.
//
// Exactly two roles exist: customers authenticate as [RoleUser], managers as
// [RoleAdmin]. A principal maps to exactly one role, fixed at token issuance.
type Role string

const (
	// Unrestricted catalog management access (Manager principals)
	RoleAdmin Role = "ADMIN"

	// Default role for registered customers
	RoleUser Role = "USER"
)

// # Role Matching

// Is reports whether the role matches the required target role exactly.
//
// Roles are disjoint, not ordered: an ADMIN token does not satisfy a USER
// gate. Customer and manager identifiers come from independent tables, so a
// manager principal passing a customer gate would be resolved against the
// wrong table.
func (r Role) Is(target Role) bool {
	return r == target
}

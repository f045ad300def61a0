// Copyright (c) 2026 audio-server. All rights reserved.

// Package pointer provides tiny helpers for working with optional values.
package pointer

// To returns a pointer to the given value.
func To[T any](value T) *T {
	return &value
}

// Deref returns the pointed-to value, or the zero value if the pointer is nil.
func Deref[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}

// Copyright (c) 2026 audio-server. All rights reserved.

/*
Package favorites implements the customer favorite flow for authors and
compositions.

Favoriting couples two effects that must stay in lock-step: membership in the
customer's favorite set and the target's popularity rating. The rating is
defined as the number of distinct customers who favorited the target, so a
repeated favorite from the same customer must change nothing at all. The
Postgres store enforces that with a single conditional statement; the memory
store mirrors the same contract for tests.
*/
package favorites

import (
	"context"

	"github.com/Mfungorn/audio-server/internal/catalog"
)

// Repository defines the data access contract for customer favorites.
type Repository interface {

	/*
		AddAuthor records the author as the customer's favorite and bumps the
		author's rating, both exactly once per (customer, author) pair. A
		repeated call is a complete no-op.

		Returns:
		  - error: NOT_FOUND when either side is missing, or storage errors
	*/
	AddAuthor(context context.Context, customerID, authorID int64) error

	/*
		AddComposition records the composition as the customer's favorite and
		bumps its rating, with the same once-per-pair contract as AddAuthor.
	*/
	AddComposition(context context.Context, customerID, compositionID int64) error

	/*
		FavoriteAuthors returns the customer's favorite authors in the order
		they were favorited.
	*/
	FavoriteAuthors(context context.Context, customerID int64) ([]*catalog.Author, error)

	/*
		FavoriteCompositions returns the customer's favorite compositions as
		hydrated projections, in the order they were favorited.
	*/
	FavoriteCompositions(context context.Context, customerID int64) ([]*catalog.CompositionProjection, error)
}

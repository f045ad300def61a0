// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

import "context"

// The favorite flow lives with the customer domain, but its entry points sit
// on the catalog routes (PATCH /authors/{id}/favorite and friends). These
// interfaces let the handlers call into it without the catalog depending on
// customer internals.

// AuthorFavoriter marks an author as a customer's favorite.
type AuthorFavoriter interface {
	FavoriteAuthor(context context.Context, customerID, authorID int64) error
}

// CompositionFavoriter marks a composition as a customer's favorite.
type CompositionFavoriter interface {
	FavoriteComposition(context context.Context, customerID, compositionID int64) error
}

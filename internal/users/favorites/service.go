// Copyright (c) 2026 audio-server. All rights reserved.

package favorites

import (
	"context"
	"log/slog"

	"github.com/Mfungorn/audio-server/internal/catalog"
)

// Service implements the favorite use cases. It satisfies
// [catalog.AuthorFavoriter], [catalog.CompositionFavoriter], and
// [customer.FavoritesReader].
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new favorites [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		logger:     logger,
	}
}

// FavoriteAuthor marks the author as the customer's favorite. Repeated calls
// are accepted and change nothing.
func (service *Service) FavoriteAuthor(context context.Context, customerID, authorID int64) error {
	if err := service.repository.AddAuthor(context, customerID, authorID); err != nil {
		return err
	}

	service.logger.Info("author_favorited",
		slog.Int64("customer_id", customerID),
		slog.Int64("author_id", authorID),
	)
	return nil
}

// FavoriteComposition marks the composition as the customer's favorite.
func (service *Service) FavoriteComposition(context context.Context, customerID, compositionID int64) error {
	if err := service.repository.AddComposition(context, customerID, compositionID); err != nil {
		return err
	}

	service.logger.Info("composition_favorited",
		slog.Int64("customer_id", customerID),
		slog.Int64("composition_id", compositionID),
	)
	return nil
}

// FavoriteAuthors returns the customer's favorite authors, oldest first.
func (service *Service) FavoriteAuthors(context context.Context, customerID int64) ([]*catalog.Author, error) {
	return service.repository.FavoriteAuthors(context, customerID)
}

// FavoriteCompositions returns the customer's favorite compositions, oldest
// first.
func (service *Service) FavoriteCompositions(context context.Context, customerID int64) ([]*catalog.CompositionProjection, error) {
	return service.repository.FavoriteCompositions(context, customerID)
}

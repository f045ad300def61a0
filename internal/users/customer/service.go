// Copyright (c) 2026 audio-server. All rights reserved.

package customer

import (
	"context"
	"log/slog"

	"github.com/Mfungorn/audio-server/internal/catalog"
	"github.com/Mfungorn/audio-server/internal/platform/validate"
)

// FavoritesReader supplies the favorite compositions shown on the profile.
// Implemented by the favorites service; an interface here keeps the account
// package free of that dependency direction.
type FavoritesReader interface {
	FavoriteCompositions(context context.Context, customerID int64) ([]*catalog.CompositionProjection, error)
}

// Service implements customer account use cases.
type Service struct {
	repository Repository
	favorites  FavoritesReader
	logger     *slog.Logger
}

// NewService constructs a new customer [Service].
func NewService(repository Repository, favorites FavoritesReader, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		favorites:  favorites,
		logger:     logger,
	}
}

// Get returns the raw account entity for the authenticated customer.
func (service *Service) Get(context context.Context, id int64) (*Customer, error) {
	return service.repository.FindByID(context, id)
}

/*
Profile assembles the full profile payload: account fields plus the
customer's favorite compositions rendered as flat payloads.
*/
func (service *Service) Profile(context context.Context, id int64) (*ProfilePayload, error) {
	account, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	favoriteCompositions, err := service.favorites.FavoriteCompositions(context, id)
	if err != nil {
		return nil, err
	}

	return &ProfilePayload{
		Name:                 account.Name,
		Email:                account.Email,
		Phone:                account.Phone,
		Balance:              account.Balance,
		FavoriteCompositions: catalog.CompositionPayloads(favoriteCompositions),
	}, nil
}

// ProfileUpdateInput holds the fields a customer may edit themselves.
type ProfileUpdateInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateProfile edits the customer's own name and phone. Balance and email
// never move through this path.
func (service *Service) UpdateProfile(context context.Context, id int64, input ProfileUpdateInput) (*Customer, error) {
	validator := &validate.Validator{}
	validator.Required("name", input.Name).MaxLen("name", input.Name, 200)
	validator.MaxLen("phone", input.Phone, 32)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	account.Name = input.Name
	account.Phone = input.Phone
	if err := service.repository.Update(context, account); err != nil {
		return nil, err
	}

	service.logger.Info("customer_profile_updated", slog.Int64("customer_id", id))
	return account, nil
}

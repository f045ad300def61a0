// Copyright (c) 2026 audio-server. All rights reserved.

package favorites

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mfungorn/audio-server/internal/catalog"
	requestutil "github.com/Mfungorn/audio-server/internal/platform/request"
	"github.com/Mfungorn/audio-server/internal/platform/respond"
)

// FavoritesPayload is the combined response for GET /user/favorites.
type FavoritesPayload struct {
	Authors      []*catalog.Author            `json:"authors"`
	Compositions []catalog.CompositionPayload `json:"compositions"`
}

// Handler implements the HTTP layer for reading a customer's favorites.
// Favoriting itself happens on the catalog routes (PATCH .../favorite).
type Handler struct {
	service *Service
}

// NewHandler constructs a new favorites [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the favorites read endpoints. The group
// is expected to be mounted behind customer authentication.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.favorites)
	router.Get("/authors", handler.favoriteAuthors)
	router.Get("/compositions", handler.favoriteCompositions)

	return router
}

func (handler *Handler) favorites(writer http.ResponseWriter, request *http.Request) {
	customerID, err := requestutil.RequiredPrincipalID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	authors, err := handler.service.FavoriteAuthors(request.Context(), customerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	compositions, err := handler.service.FavoriteCompositions(request.Context(), customerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if authors == nil {
		authors = []*catalog.Author{}
	}
	respond.OK(writer, FavoritesPayload{
		Authors:      authors,
		Compositions: catalog.CompositionPayloads(compositions),
	})
}

func (handler *Handler) favoriteAuthors(writer http.ResponseWriter, request *http.Request) {
	customerID, err := requestutil.RequiredPrincipalID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	authors, err := handler.service.FavoriteAuthors(request.Context(), customerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if authors == nil {
		authors = []*catalog.Author{}
	}
	respond.OK(writer, authors)
}

func (handler *Handler) favoriteCompositions(writer http.ResponseWriter, request *http.Request) {
	customerID, err := requestutil.RequiredPrincipalID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	compositions, err := handler.service.FavoriteCompositions(request.Context(), customerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, catalog.CompositionPayloads(compositions))
}

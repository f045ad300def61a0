// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mfungorn/audio-server/internal/platform/middleware"
	requestutil "github.com/Mfungorn/audio-server/internal/platform/request"
	"github.com/Mfungorn/audio-server/internal/platform/respond"
	"github.com/Mfungorn/audio-server/internal/platform/sec"
)

// GenreHandler implements the HTTP layer for genre management and discovery.
//
// Genres are addressed by name rather than id throughout: names are unique
// and the public identifier clients actually hold.
type GenreHandler struct {
	service *GenreService
}

// NewGenreHandler constructs a new [GenreHandler].
func NewGenreHandler(service *GenreService) *GenreHandler {
	return &GenreHandler{service: service}
}

// Routes returns a [chi.Router] configured with the genre endpoints.
func (handler *GenreHandler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/all", handler.listGenres)
	router.Get("/search", handler.searchGenres)
	router.Get("/{name}", handler.getGenre)
	router.Get("/{name}/compositions", handler.genreCompositions)

	// ## Catalog Management (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createGenre)
		admin.Delete("/{name}", handler.deleteGenre)
	})

	return router
}

func (handler *GenreHandler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genres)
}

func (handler *GenreHandler) searchGenres(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")

	genres, err := handler.service.SearchGenres(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genres)
}

func (handler *GenreHandler) getGenre(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Param(request, "name")

	genre, err := handler.service.GetGenreByName(request.Context(), name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genre)
}

// genreCompositions returns the genre's compositions, most popular first.
func (handler *GenreHandler) genreCompositions(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Param(request, "name")

	compositions, err := handler.service.GenreCompositions(request.Context(), name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, CompositionPayloads(compositions))
}

func (handler *GenreHandler) createGenre(writer http.ResponseWriter, request *http.Request) {
	var input Genre
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateGenre(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *GenreHandler) deleteGenre(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Param(request, "name")

	if err := handler.service.DeleteGenre(request.Context(), name); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, name)
}

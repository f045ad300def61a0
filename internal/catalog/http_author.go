// Copyright (c) 2026 audio-server. All rights reserved.

/*
Package catalog provides the HTTP interface for browsing and managing the
music catalog.

# Routing Strategy

  - Discovery (Public): listing, popularity charts, prefix search, and
    relationship traversal are open to all visitors.
  - Management (Restricted): POST/PUT/PATCH/DELETE require [sec.RoleAdmin].
  - Favorites (Authenticated): the favorite endpoints require a logged-in
    customer and are delegated to the user domain.

The handlers translate between the web/JSON layer and the domain services.
*/
package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mfungorn/audio-server/internal/platform/middleware"
	requestutil "github.com/Mfungorn/audio-server/internal/platform/request"
	"github.com/Mfungorn/audio-server/internal/platform/respond"
	"github.com/Mfungorn/audio-server/internal/platform/sec"
	"github.com/Mfungorn/audio-server/pkg/pagination"
)

// AuthorHandler implements the HTTP layer for author management and discovery.
type AuthorHandler struct {
	service   *AuthorService
	favorites AuthorFavoriter
}

// NewAuthorHandler constructs a new [AuthorHandler].
func NewAuthorHandler(service *AuthorService, favorites AuthorFavoriter) *AuthorHandler {
	return &AuthorHandler{service: service, favorites: favorites}
}

// Routes returns a [chi.Router] configured with the author endpoints.
func (handler *AuthorHandler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/", handler.getAuthorByName)
	router.Get("/all", handler.listAuthors)
	router.Get("/popular", handler.popularAuthors)
	router.Get("/search", handler.searchAuthors)
	router.Get("/{id}", handler.getAuthor)
	router.Get("/{id}/albums", handler.authorAlbums)
	router.Get("/{id}/compositions", handler.authorCompositions)
	router.Get("/{id}/genres", handler.authorGenres)

	// ## Favorites (Authenticated Customers)
	router.With(middleware.RequireRole(sec.RoleUser)).
		Patch("/{id}/favorite", handler.favoriteAuthor)

	// ## Catalog Management (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createAuthor)
		admin.Put("/{id}", handler.updateAuthor)
		admin.Patch("/{id}/albums", handler.addAlbum)
		admin.Patch("/{id}/compositions", handler.addComposition)
		admin.Delete("/{id}", handler.deleteAuthor)
	})

	return router
}

func (handler *AuthorHandler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	authors, total, err := handler.service.ListAuthors(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, authors, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *AuthorHandler) popularAuthors(writer http.ResponseWriter, request *http.Request) {
	authors, err := handler.service.PopularAuthors(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, authors)
}

func (handler *AuthorHandler) searchAuthors(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")

	authors, err := handler.service.SearchAuthors(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, authors)
}

func (handler *AuthorHandler) getAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.service.GetAuthor(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, author)
}

func (handler *AuthorHandler) getAuthorByName(writer http.ResponseWriter, request *http.Request) {
	name := request.URL.Query().Get("name")

	author, err := handler.service.GetAuthorByName(request.Context(), name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, author)
}

func (handler *AuthorHandler) authorAlbums(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	albums, err := handler.service.AuthorAlbums(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, AlbumPayloads(albums))
}

func (handler *AuthorHandler) authorCompositions(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	compositions, err := handler.service.AuthorCompositions(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, CompositionPayloads(compositions))
}

func (handler *AuthorHandler) authorGenres(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	genres, err := handler.service.AuthorGenres(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genres)
}

func (handler *AuthorHandler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	var input Author
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateAuthor(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *AuthorHandler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Author
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateAuthor(request.Context(), authorID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

// addAlbum links an existing album to the author. The album is identified by
// its title, carried as the raw request body.
func (handler *AuthorHandler) addAlbum(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	albumTitle, err := requestutil.RawBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddAlbum(request.Context(), authorID, albumTitle); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Album added to author")
}

// addComposition links an existing composition, identified by its title in
// the raw request body, to the author.
func (handler *AuthorHandler) addComposition(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	compositionTitle, err := requestutil.RawBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddComposition(request.Context(), authorID, compositionTitle); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Composition added to author")
}

func (handler *AuthorHandler) favoriteAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	customerID, err := requestutil.RequiredPrincipalID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.favorites.FavoriteAuthor(request.Context(), customerID, authorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Author added to favorites")
}

func (handler *AuthorHandler) deleteAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAuthor(request.Context(), authorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, authorID)
}

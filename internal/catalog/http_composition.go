// Copyright (c) 2026 audio-server. All rights reserved.

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

// CompositionHandler implements the HTTP layer for composition management
// and discovery.
type CompositionHandler struct {
	service   *CompositionService
	favorites CompositionFavoriter
}

// NewCompositionHandler constructs a new [CompositionHandler].
func NewCompositionHandler(service *CompositionService, favorites CompositionFavoriter) *CompositionHandler {
	return &CompositionHandler{service: service, favorites: favorites}
}

// Routes returns a [chi.Router] configured with the composition endpoints.
func (handler *CompositionHandler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/", handler.getCompositionByTitle)
	router.Get("/all", handler.listCompositions)
	router.Get("/popular", handler.popularCompositions)
	router.Get("/search", handler.searchCompositions)
	router.Get("/{id}", handler.getComposition)
	router.Get("/{id}/albums", handler.compositionAlbums)
	router.Get("/{id}/authors", handler.compositionAuthors)
	router.Get("/{id}/genres", handler.compositionGenres)

	// ## Favorites (Authenticated Customers)
	router.With(middleware.RequireRole(sec.RoleUser)).
		Patch("/{id}/favorite", handler.favoriteComposition)

	// ## Catalog Management (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createComposition)
		admin.Put("/{id}", handler.updateComposition)
		admin.Patch("/{id}/authors", handler.addAuthor)
		admin.Patch("/{id}/albums", handler.addAlbum)
		admin.Patch("/{id}/genres", handler.addGenre)
		admin.Delete("/{id}", handler.deleteComposition)
	})

	return router
}

func (handler *CompositionHandler) listCompositions(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	compositions, total, err := handler.service.ListCompositions(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, CompositionPayloads(compositions), pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *CompositionHandler) popularCompositions(writer http.ResponseWriter, request *http.Request) {
	compositions, err := handler.service.PopularCompositions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, CompositionPayloads(compositions))
}

func (handler *CompositionHandler) searchCompositions(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")

	compositions, err := handler.service.SearchCompositions(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, CompositionPayloads(compositions))
}

func (handler *CompositionHandler) getComposition(writer http.ResponseWriter, request *http.Request) {
	compositionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	composition, err := handler.service.GetComposition(request.Context(), compositionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, composition.Payload())
}

func (handler *CompositionHandler) getCompositionByTitle(writer http.ResponseWriter, request *http.Request) {
	title := request.URL.Query().Get("title")

	composition, err := handler.service.GetCompositionByTitle(request.Context(), title)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, composition.Payload())
}

func (handler *CompositionHandler) compositionAlbums(writer http.ResponseWriter, request *http.Request) {
	compositionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	albums, err := handler.service.CompositionAlbums(request.Context(), compositionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, AlbumPayloads(albums))
}

func (handler *CompositionHandler) compositionAuthors(writer http.ResponseWriter, request *http.Request) {
	compositionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	authors, err := handler.service.CompositionAuthors(request.Context(), compositionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, authors)
}

func (handler *CompositionHandler) compositionGenres(writer http.ResponseWriter, request *http.Request) {
	compositionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	genres, err := handler.service.CompositionGenres(request.Context(), compositionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genres)
}

func (handler *CompositionHandler) createComposition(writer http.ResponseWriter, request *http.Request) {
	var input Composition
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateComposition(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *CompositionHandler) updateComposition(writer http.ResponseWriter, request *http.Request) {
	compositionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Composition
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateComposition(request.Context(), compositionID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

// addAuthor links an existing author, identified by name in the raw request
// body, to the composition.
func (handler *CompositionHandler) addAuthor(writer http.ResponseWriter, request *http.Request) {
	compositionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	authorName, err := requestutil.RawBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddAuthor(request.Context(), compositionID, authorName); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Author added to composition")
}

// addAlbum links an existing album, identified by title in the raw request
// body, to the composition.
func (handler *CompositionHandler) addAlbum(writer http.ResponseWriter, request *http.Request) {
	compositionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	albumTitle, err := requestutil.RawBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddAlbum(request.Context(), compositionID, albumTitle); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Album added to composition")
}

// addGenre links an existing genre, identified by name in the raw request
// body, to the composition.
func (handler *CompositionHandler) addGenre(writer http.ResponseWriter, request *http.Request) {
	compositionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	genreName, err := requestutil.RawBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddGenre(request.Context(), compositionID, genreName); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Genre added to composition")
}

func (handler *CompositionHandler) favoriteComposition(writer http.ResponseWriter, request *http.Request) {
	compositionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	customerID, err := requestutil.RequiredPrincipalID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.favorites.FavoriteComposition(request.Context(), customerID, compositionID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Composition added to favorites")
}

func (handler *CompositionHandler) deleteComposition(writer http.ResponseWriter, request *http.Request) {
	compositionID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteComposition(request.Context(), compositionID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, compositionID)
}

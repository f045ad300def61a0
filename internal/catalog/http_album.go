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

// AlbumHandler implements the HTTP layer for album management and discovery.
//
// Album reads are served as flat payloads: price and track count are computed
// from the album's compositions at request time.
type AlbumHandler struct {
	service *AlbumService
}

// NewAlbumHandler constructs a new [AlbumHandler].
func NewAlbumHandler(service *AlbumService) *AlbumHandler {
	return &AlbumHandler{service: service}
}

// Routes returns a [chi.Router] configured with the album endpoints.
func (handler *AlbumHandler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/", handler.getAlbumByTitle)
	router.Get("/all", handler.listAlbums)
	router.Get("/popular", handler.popularAlbums)
	router.Get("/search", handler.searchAlbums)
	router.Get("/{id}", handler.getAlbum)
	router.Get("/{id}/authors", handler.albumAuthors)
	router.Get("/{id}/compositions", handler.albumCompositions)
	router.Get("/{id}/genres", handler.albumGenres)

	// ## Catalog Management (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createAlbum)
		admin.Put("/{id}", handler.updateAlbum)
		admin.Patch("/{id}/authors", handler.addAuthor)
		admin.Patch("/{id}/compositions", handler.addComposition)
		admin.Delete("/{id}", handler.deleteAlbum)
	})

	return router
}

func (handler *AlbumHandler) listAlbums(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	albums, total, err := handler.service.ListAlbums(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, AlbumPayloads(albums), pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *AlbumHandler) popularAlbums(writer http.ResponseWriter, request *http.Request) {
	albums, err := handler.service.PopularAlbums(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, AlbumPayloads(albums))
}

func (handler *AlbumHandler) searchAlbums(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")

	albums, err := handler.service.SearchAlbums(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, AlbumPayloads(albums))
}

func (handler *AlbumHandler) getAlbum(writer http.ResponseWriter, request *http.Request) {
	albumID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	album, err := handler.service.GetAlbum(request.Context(), albumID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, album.Payload())
}

func (handler *AlbumHandler) getAlbumByTitle(writer http.ResponseWriter, request *http.Request) {
	title := request.URL.Query().Get("title")

	album, err := handler.service.GetAlbumByTitle(request.Context(), title)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, album.Payload())
}

func (handler *AlbumHandler) albumAuthors(writer http.ResponseWriter, request *http.Request) {
	albumID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	authors, err := handler.service.AlbumAuthors(request.Context(), albumID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, authors)
}

func (handler *AlbumHandler) albumCompositions(writer http.ResponseWriter, request *http.Request) {
	albumID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	compositions, err := handler.service.AlbumCompositions(request.Context(), albumID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, CompositionPayloads(compositions))
}

func (handler *AlbumHandler) albumGenres(writer http.ResponseWriter, request *http.Request) {
	albumID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	genres, err := handler.service.AlbumGenres(request.Context(), albumID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, genres)
}

func (handler *AlbumHandler) createAlbum(writer http.ResponseWriter, request *http.Request) {
	var input Album
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateAlbum(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *AlbumHandler) updateAlbum(writer http.ResponseWriter, request *http.Request) {
	albumID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Album
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateAlbum(request.Context(), albumID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

// addAuthor links an existing author, identified by name in the raw request
// body, to the album.
func (handler *AlbumHandler) addAuthor(writer http.ResponseWriter, request *http.Request) {
	albumID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	authorName, err := requestutil.RawBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddAuthor(request.Context(), albumID, authorName); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Author added to album")
}

// addComposition links an existing composition, identified by title in the
// raw request body, to the album.
func (handler *AlbumHandler) addComposition(writer http.ResponseWriter, request *http.Request) {
	albumID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	compositionTitle, err := requestutil.RawBody(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddComposition(request.Context(), albumID, compositionTitle); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Composition added to album")
}

func (handler *AlbumHandler) deleteAlbum(writer http.ResponseWriter, request *http.Request) {
	albumID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAlbum(request.Context(), albumID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, albumID)
}

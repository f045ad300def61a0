// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mfungorn/audio-server/internal/platform/respond"
)

// SearchHandler serves the cross-catalog search endpoint.
type SearchHandler struct {
	service *SearchService
}

// NewSearchHandler constructs a new [SearchHandler].
func NewSearchHandler(service *SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Routes returns a [chi.Router] with the global search endpoint.
func (handler *SearchHandler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.search)
	return router
}

func (handler *SearchHandler) search(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query().Get("q")

	result, err := handler.service.Search(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

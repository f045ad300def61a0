// Copyright (c) 2026 audio-server. All rights reserved.

package catalog_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mfungorn/audio-server/internal/catalog"
	"github.com/Mfungorn/audio-server/internal/platform/apperr"
)

// compositionStoreStub serves canned lookups for handler tests. Embedding the
// interface makes every unstubbed method panic, so a test that wanders off
// its expected path fails loudly.
type compositionStoreStub struct {
	catalog.CompositionRepository

	compositions map[int64]*catalog.CompositionProjection
	authors      map[int64][]*catalog.Author
}

func (stub *compositionStoreStub) FindCompositionByID(_ context.Context, id int64) (*catalog.CompositionProjection, error) {
	projection, found := stub.compositions[id]
	if !found {
		return nil, apperr.NotFoundWith("Composition", catalog.FieldID, id)
	}
	return projection, nil
}

func (stub *compositionStoreStub) CompositionAuthors(_ context.Context, compositionID int64) ([]*catalog.Author, error) {
	return stub.authors[compositionID], nil
}

// noopFavoriter satisfies the favorite dependency for routes these tests
// never touch.
type noopFavoriter struct{}

func (noopFavoriter) FavoriteComposition(context.Context, int64, int64) error { return nil }

/*
TestCompositionAuthors_Endpoint verifies that a composition's author
collection is served at GET /{id}/authors, in link order.
*/
func TestCompositionAuthors_Endpoint(t *testing.T) {
	stub := &compositionStoreStub{
		compositions: map[int64]*catalog.CompositionProjection{
			10: {Composition: catalog.Composition{ID: 10, Title: "Numb"}},
		},
		authors: map[int64][]*catalog.Author{
			10: {
				{ID: 1, Name: "Linkin Park", Rating: 7},
				{ID: 2, Name: "Jay-Z", Rating: 5},
			},
		},
	}

	service := catalog.NewCompositionService(stub, slog.Default())
	handler := catalog.NewCompositionHandler(service, noopFavoriter{})

	request := httptest.NewRequest(http.MethodGet, "/10/authors", nil)
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []catalog.Author `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "Linkin Park", envelope.Data[0].Name)
	assert.Equal(t, "Jay-Z", envelope.Data[1].Name)
}

/*
TestCompositionAuthors_UnknownComposition verifies that the author collection
of a missing composition is a 404, not an empty list.
*/
func TestCompositionAuthors_UnknownComposition(t *testing.T) {
	stub := &compositionStoreStub{
		compositions: map[int64]*catalog.CompositionProjection{},
	}

	service := catalog.NewCompositionService(stub, slog.Default())
	handler := catalog.NewCompositionHandler(service, noopFavoriter{})

	request := httptest.NewRequest(http.MethodGet, "/99/authors", nil)
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

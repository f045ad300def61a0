// Copyright (c) 2026 audio-server. All rights reserved.

package favorites_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mfungorn/audio-server/internal/catalog"
	"github.com/Mfungorn/audio-server/internal/platform/apperr"
	"github.com/Mfungorn/audio-server/internal/users/favorites"
)

func newTestService() (*favorites.Service, *favorites.MemoryRepository) {
	repository := favorites.NewMemoryRepository()
	service := favorites.NewService(repository, slog.Default())
	return service, repository
}

/*
TestFavoriteAuthor_IncrementsRatingOnce verifies the core favorite invariant:
the first favorite moves the rating by exactly one, and repeats change nothing.
*/
func TestFavoriteAuthor_IncrementsRatingOnce(t *testing.T) {
	service, repository := newTestService()
	repository.SeedAuthor(&catalog.Author{ID: 1, Name: "Muse", Rating: 5})

	require.NoError(t, service.FavoriteAuthor(context.Background(), 100, 1))
	assert.Equal(t, 6, repository.Author(1).Rating)

	// Same customer again: membership and rating both stay put.
	require.NoError(t, service.FavoriteAuthor(context.Background(), 100, 1))
	assert.Equal(t, 6, repository.Author(1).Rating)

	favoriteAuthors, err := service.FavoriteAuthors(context.Background(), 100)
	require.NoError(t, err)
	assert.Len(t, favoriteAuthors, 1)
}

/*
TestFavoriteAuthor_DistinctCustomers checks that the rating counts distinct
customers, one increment each.
*/
func TestFavoriteAuthor_DistinctCustomers(t *testing.T) {
	service, repository := newTestService()
	repository.SeedAuthor(&catalog.Author{ID: 1, Name: "Metallica"})

	require.NoError(t, service.FavoriteAuthor(context.Background(), 100, 1))
	require.NoError(t, service.FavoriteAuthor(context.Background(), 200, 1))
	require.NoError(t, service.FavoriteAuthor(context.Background(), 300, 1))

	assert.Equal(t, 3, repository.Author(1).Rating)
}

func TestFavoriteAuthor_MissingAuthor(t *testing.T) {
	service, _ := newTestService()

	err := service.FavoriteAuthor(context.Background(), 100, 42)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
}

/*
TestFavoriteComposition_SymmetricWithList verifies that a favorited
composition appears in the customer's list with the bumped rating, and that
another customer's list stays empty.
*/
func TestFavoriteComposition_SymmetricWithList(t *testing.T) {
	service, repository := newTestService()
	repository.SeedComposition(&catalog.CompositionProjection{
		Composition: catalog.Composition{ID: 7, Title: "Numb", Price: 120},
		AuthorNames: []string{"Linkin Park"},
	})

	require.NoError(t, service.FavoriteComposition(context.Background(), 100, 7))

	compositions, err := service.FavoriteCompositions(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, compositions, 1)
	assert.Equal(t, "Numb", compositions[0].Title)
	assert.Equal(t, 1, compositions[0].Rating)

	others, err := service.FavoriteCompositions(context.Background(), 200)
	require.NoError(t, err)
	assert.Empty(t, others)
}

/*
TestFavoriteCompositions_Order checks that favorites come back in the order
they were added.
*/
func TestFavoriteCompositions_Order(t *testing.T) {
	service, repository := newTestService()
	repository.SeedComposition(&catalog.CompositionProjection{Composition: catalog.Composition{ID: 1, Title: "First"}})
	repository.SeedComposition(&catalog.CompositionProjection{Composition: catalog.Composition{ID: 2, Title: "Second"}})

	require.NoError(t, service.FavoriteComposition(context.Background(), 100, 2))
	require.NoError(t, service.FavoriteComposition(context.Background(), 100, 1))

	compositions, err := service.FavoriteCompositions(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, compositions, 2)
	assert.Equal(t, "Second", compositions[0].Title)
	assert.Equal(t, "First", compositions[1].Title)
}

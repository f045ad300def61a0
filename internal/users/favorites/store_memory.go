// Copyright (c) 2026 audio-server. All rights reserved.

package favorites

import (
	"context"
	"sync"

	"github.com/Mfungorn/audio-server/internal/catalog"
	"github.com/Mfungorn/audio-server/internal/platform/apperr"
)

// MemoryRepository is an in-memory [Repository] used by tests. It holds its
// own author and composition records so rating changes can be observed
// without a database.
type MemoryRepository struct {
	mu sync.Mutex

	authors      map[int64]*catalog.Author
	compositions map[int64]*catalog.CompositionProjection

	// favorite pairs in insertion order per customer
	favoriteAuthors      map[int64][]int64
	favoriteCompositions map[int64][]int64
}

// NewMemoryRepository constructs an empty in-memory favorites store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		authors:              make(map[int64]*catalog.Author),
		compositions:         make(map[int64]*catalog.CompositionProjection),
		favoriteAuthors:      make(map[int64][]int64),
		favoriteCompositions: make(map[int64][]int64),
	}
}

// SeedAuthor registers an author the store can favorite.
func (repository *MemoryRepository) SeedAuthor(author *catalog.Author) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.authors[author.ID] = author
}

// SeedComposition registers a composition the store can favorite.
func (repository *MemoryRepository) SeedComposition(projection *catalog.CompositionProjection) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.compositions[projection.ID] = projection
}

// Author returns a seeded author by id, for rating assertions.
func (repository *MemoryRepository) Author(id int64) *catalog.Author {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.authors[id]
}

// Composition returns a seeded composition by id, for rating assertions.
func (repository *MemoryRepository) Composition(id int64) *catalog.CompositionProjection {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return repository.compositions[id]
}

func (repository *MemoryRepository) AddAuthor(_ context.Context, customerID, authorID int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	author, ok := repository.authors[authorID]
	if !ok {
		return apperr.NotFoundWith("Author", "id", authorID)
	}

	for _, existing := range repository.favoriteAuthors[customerID] {
		if existing == authorID {
			return nil
		}
	}

	repository.favoriteAuthors[customerID] = append(repository.favoriteAuthors[customerID], authorID)
	author.Rating++
	return nil
}

func (repository *MemoryRepository) AddComposition(_ context.Context, customerID, compositionID int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	composition, ok := repository.compositions[compositionID]
	if !ok {
		return apperr.NotFoundWith("Composition", "id", compositionID)
	}

	for _, existing := range repository.favoriteCompositions[customerID] {
		if existing == compositionID {
			return nil
		}
	}

	repository.favoriteCompositions[customerID] = append(repository.favoriteCompositions[customerID], compositionID)
	composition.Rating++
	return nil
}

func (repository *MemoryRepository) FavoriteAuthors(_ context.Context, customerID int64) ([]*catalog.Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var authors []*catalog.Author
	for _, id := range repository.favoriteAuthors[customerID] {
		if author, ok := repository.authors[id]; ok {
			authors = append(authors, author)
		}
	}
	return authors, nil
}

func (repository *MemoryRepository) FavoriteCompositions(_ context.Context, customerID int64) ([]*catalog.CompositionProjection, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var projections []*catalog.CompositionProjection
	for _, id := range repository.favoriteCompositions[customerID] {
		if projection, ok := repository.compositions[id]; ok {
			projections = append(projections, projection)
		}
	}
	return projections, nil
}

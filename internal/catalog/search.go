// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// SearchResult aggregates prefix matches across the whole catalog.
type SearchResult struct {
	Authors      []*Author            `json:"authors"`
	Albums       []AlbumPayload       `json:"albums"`
	Compositions []CompositionPayload `json:"compositions"`
	Genres       []Genre              `json:"genres"`
}

// SearchService fans a single query out to every catalog repository.
type SearchService struct {
	authors      AuthorRepository
	albums       AlbumRepository
	compositions CompositionRepository
	genres       GenreRepository
	logger       *slog.Logger
}

func NewSearchService(
	authors AuthorRepository,
	albums AlbumRepository,
	compositions CompositionRepository,
	genres GenreRepository,
	logger *slog.Logger,
) *SearchService {
	return &SearchService{
		authors:      authors,
		albums:       albums,
		compositions: compositions,
		genres:       genres,
		logger:       logger,
	}
}

/*
Search runs the four prefix searches concurrently and merges the results.

The branches are independent reads, so they share the request context and the
first failure cancels the rest. Empty sections come back as empty slices, not
null, to keep the response shape stable for clients.
*/
func (service *SearchService) Search(context context.Context, query string) (*SearchResult, error) {
	result := &SearchResult{
		Authors:      []*Author{},
		Albums:       []AlbumPayload{},
		Compositions: []CompositionPayload{},
		Genres:       []Genre{},
	}

	group, groupContext := errgroup.WithContext(context)

	group.Go(func() error {
		authors, err := service.authors.SearchAuthors(groupContext, query)
		if err != nil {
			return err
		}
		if authors != nil {
			result.Authors = authors
		}
		return nil
	})

	group.Go(func() error {
		albums, err := service.albums.SearchAlbums(groupContext, query)
		if err != nil {
			return err
		}
		result.Albums = AlbumPayloads(albums)
		return nil
	})

	group.Go(func() error {
		compositions, err := service.compositions.SearchCompositions(groupContext, query)
		if err != nil {
			return err
		}
		result.Compositions = CompositionPayloads(compositions)
		return nil
	})

	group.Go(func() error {
		genres, err := service.genres.SearchGenres(groupContext, query)
		if err != nil {
			return err
		}
		if genres != nil {
			result.Genres = genres
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	service.logger.Debug("catalog_search",
		slog.String("query", query),
		slog.Int("authors", len(result.Authors)),
		slog.Int("albums", len(result.Albums)),
		slog.Int("compositions", len(result.Compositions)),
		slog.Int("genres", len(result.Genres)),
	)
	return result, nil
}

// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

import (
	"context"
	"strings"
)

// AuthorRepository defines the data access contract for authors.
//
// Lookups that miss return an [apperr.AppError] NOT_FOUND carrying the
// (entity, field, value) triple; they never return a nil entity with nil error.
type AuthorRepository interface {
	FindAuthorByID(context context.Context, id int64) (*Author, error)
	FindAuthorByName(context context.Context, name string) (*Author, error)
	ListAuthors(context context.Context, limit, offset int) ([]*Author, int, error)
	ListAuthorsByRating(context context.Context) ([]*Author, error)
	SearchAuthors(context context.Context, prefix string) ([]*Author, error)
	CreateAuthor(context context.Context, author *Author) error
	UpdateAuthor(context context.Context, author *Author) error
	DeleteAuthor(context context.Context, id int64) error

	// Related collections, hydrated as projections where payloads are served.
	AuthorAlbums(context context.Context, authorID int64) ([]*AlbumProjection, error)
	AuthorCompositions(context context.Context, authorID int64) ([]*CompositionProjection, error)
	AuthorGenres(context context.Context, authorID int64) ([]Genre, error)

	// Symmetric, idempotent link operations. The counterpart is resolved by
	// its unique title; a second call with the same pair is a no-op.
	LinkAuthorAlbum(context context.Context, authorID int64, albumTitle string) error
	LinkAuthorComposition(context context.Context, authorID int64, compositionTitle string) error
}

// AlbumRepository defines the data access contract for albums.
type AlbumRepository interface {
	FindAlbumByID(context context.Context, id int64) (*AlbumProjection, error)
	FindAlbumByTitle(context context.Context, title string) (*AlbumProjection, error)
	ListAlbums(context context.Context, limit, offset int) ([]*AlbumProjection, int, error)
	ListAlbumsByRating(context context.Context) ([]*AlbumProjection, error)
	SearchAlbums(context context.Context, prefix string) ([]*AlbumProjection, error)
	CreateAlbum(context context.Context, album *Album) error
	UpdateAlbum(context context.Context, album *Album) error
	DeleteAlbum(context context.Context, id int64) error

	AlbumAuthors(context context.Context, albumID int64) ([]*Author, error)
	AlbumCompositions(context context.Context, albumID int64) ([]*CompositionProjection, error)
	AlbumGenres(context context.Context, albumID int64) ([]Genre, error)

	LinkAlbumAuthor(context context.Context, albumID int64, authorName string) error
	LinkAlbumComposition(context context.Context, albumID int64, compositionTitle string) error
}

// CompositionRepository defines the data access contract for compositions.
type CompositionRepository interface {
	FindCompositionByID(context context.Context, id int64) (*CompositionProjection, error)
	FindCompositionByTitle(context context.Context, title string) (*CompositionProjection, error)
	ListCompositions(context context.Context, limit, offset int) ([]*CompositionProjection, int, error)
	ListCompositionsByRating(context context.Context) ([]*CompositionProjection, error)
	SearchCompositions(context context.Context, prefix string) ([]*CompositionProjection, error)
	CreateComposition(context context.Context, composition *Composition) error
	UpdateComposition(context context.Context, composition *Composition) error
	DeleteComposition(context context.Context, id int64) error

	CompositionAlbums(context context.Context, compositionID int64) ([]*AlbumProjection, error)
	CompositionAuthors(context context.Context, compositionID int64) ([]*Author, error)
	CompositionGenres(context context.Context, compositionID int64) ([]Genre, error)

	LinkCompositionAuthor(context context.Context, compositionID int64, authorName string) error
	LinkCompositionAlbum(context context.Context, compositionID int64, albumTitle string) error
	LinkCompositionGenre(context context.Context, compositionID int64, genreName string) error
}

// GenreRepository defines the data access contract for genres.
type GenreRepository interface {
	FindGenreByName(context context.Context, name string) (*Genre, error)
	ListGenres(context context.Context) ([]Genre, error)
	SearchGenres(context context.Context, prefix string) ([]Genre, error)
	CreateGenre(context context.Context, genre *Genre) error
	DeleteGenre(context context.Context, name string) error

	// GenreCompositions returns the genre's compositions sorted by rating
	// descending.
	GenreCompositions(context context.Context, name string) ([]*CompositionProjection, error)
}

// likeEscaper neutralizes the LIKE metacharacters so a user-supplied search
// prefix always matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLikePrefix prepares a raw search prefix for use in a LIKE $1 || '%'
// clause. Without it, a prefix like "%e" degenerates into a contains-match.
func EscapeLikePrefix(prefix string) string {
	return likeEscaper.Replace(prefix)
}

// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mfungorn/audio-server/internal/platform/apperr"
	"github.com/Mfungorn/audio-server/internal/platform/dberr"
)

// genreRepository implements the [GenreRepository] interface using pgx.
type genreRepository struct {
	pool *pgxpool.Pool
}

// NewGenreRepository constructs a PostgreSQL backed genre store.
func NewGenreRepository(pool *pgxpool.Pool) GenreRepository {
	return &genreRepository{pool: pool}
}

/*
FindGenreByName returns a single genre matched by its unique name.
*/
func (repository *genreRepository) FindGenreByName(context context.Context, name string) (*Genre, error) {
	genre := &Genre{}
	err := repository.pool.QueryRow(context, `SELECT id, name FROM genre WHERE name = $1`, name).
		Scan(&genre.ID, &genre.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundWith("Genre", FieldName, name)
	}
	return genre, dberr.Wrap(err, "find_genre")
}

/*
ListGenres returns every genre, alphabetically. The genre catalog is small by
nature, so there is no pagination here.
*/
func (repository *genreRepository) ListGenres(context context.Context) ([]Genre, error) {
	rows, err := repository.pool.Query(context, `SELECT id, name FROM genre ORDER BY name ASC`)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	return scanGenres(rows)
}

/*
SearchGenres returns genres whose name starts with the given prefix,
case-sensitively.
*/
func (repository *genreRepository) SearchGenres(context context.Context, prefix string) ([]Genre, error) {
	rows, err := repository.pool.Query(context,
		`SELECT id, name FROM genre WHERE name LIKE $1 || '%' ORDER BY name ASC`, EscapeLikePrefix(prefix))
	if err != nil {
		return nil, dberr.Wrap(err, "search_genres")
	}
	defer rows.Close()

	return scanGenres(rows)
}

/*
CreateGenre inserts a new genre. A duplicate name surfaces as a CONFLICT.
*/
func (repository *genreRepository) CreateGenre(context context.Context, genre *Genre) error {
	err := repository.pool.QueryRow(context,
		`INSERT INTO genre (name) VALUES ($1) RETURNING id`, genre.Name).Scan(&genre.ID)
	return dberr.Wrap(err, "create_genre")
}

/*
DeleteGenre removes a genre by name; composition links cascade away, which
silently narrows the derived genre lists of affected authors and albums.
*/
func (repository *genreRepository) DeleteGenre(context context.Context, name string) error {
	tag, err := repository.pool.Exec(context, `DELETE FROM genre WHERE name = $1`, name)
	if err != nil {
		return dberr.Wrap(err, "delete_genre")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundWith("Genre", FieldName, name)
	}
	return nil
}

/*
GenreCompositions returns the genre's compositions as hydrated projections,
ordered by rating descending.
*/
func (repository *genreRepository) GenreCompositions(context context.Context, name string) ([]*CompositionProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM composition_genre link
		JOIN genre g ON g.id = link.genre_id
		JOIN composition c ON c.id = link.composition_id
		WHERE g.name = $1
		ORDER BY c.rating DESC, c.id ASC
	`, compositionProjectionColumns)

	rows, err := repository.pool.Query(context, query, name)
	if err != nil {
		return nil, dberr.Wrap(err, "genre_compositions")
	}
	defer rows.Close()

	return scanCompositionProjections(rows)
}

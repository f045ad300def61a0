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

// # PostgreSQL Repositories

// authorRepository implements the [AuthorRepository] interface using pgx.
type authorRepository struct {
	pool *pgxpool.Pool
}

// NewAuthorRepository constructs a PostgreSQL backed author store.
func NewAuthorRepository(pool *pgxpool.Pool) AuthorRepository {
	return &authorRepository{pool: pool}
}

// authorColumns is the base column list shared by every author query.
const authorColumns = `a.id, a.name, a.bio, a.logo, a.rating`

// authorGenresAgg derives the author's genres transitively from the genres of
// the author's compositions.
const authorGenresAgg = `
	COALESCE((
		SELECT array_agg(DISTINCT g.name)
		FROM composition_author ca
		JOIN composition_genre cg ON cg.composition_id = ca.composition_id
		JOIN genre g ON g.id = cg.genre_id
		WHERE ca.author_id = a.id
	), '{}')`

/*
FindAuthorByID returns a single author hydrated with its derived genre list.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Author: Hydrated author entity
  - error: NOT_FOUND when no such row exists
*/
func (repository *authorRepository) FindAuthorByID(context context.Context, id int64) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM author a
		WHERE a.id = $1
	`, authorColumns, authorGenresAgg)

	author := &Author{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&author.ID, &author.Name, &author.Bio, &author.Logo, &author.Rating, &author.Genres,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundWith("Author", FieldID, id)
	}
	return author, dberr.Wrap(err, "find_author")
}

/*
FindAuthorByName returns a single author matched by its unique name.
*/
func (repository *authorRepository) FindAuthorByName(context context.Context, name string) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM author a
		WHERE a.name = $1
	`, authorColumns, authorGenresAgg)

	author := &Author{}
	err := repository.pool.QueryRow(context, query, name).Scan(
		&author.ID, &author.Name, &author.Bio, &author.Logo, &author.Rating, &author.Genres,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundWith("Author", FieldName, name)
	}
	return author, dberr.Wrap(err, "find_author_by_name")
}

/*
ListAuthors returns a paginated slice of authors and the total count.

Description: Uses the COUNT(*) OVER() window function to retrieve the total
record count without a second round-trip.
*/
func (repository *authorRepository) ListAuthors(context context.Context, limit, offset int) ([]*Author, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM author a
		ORDER BY a.name ASC
		LIMIT $1 OFFSET $2
	`, authorColumns)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	var authors []*Author
	var total int
	for rows.Next() {
		author := &Author{}
		if err := rows.Scan(&author.ID, &author.Name, &author.Bio, &author.Logo, &author.Rating, &total); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, author)
	}
	return authors, total, rows.Err()
}

/*
ListAuthorsByRating returns all authors ordered by popularity, best first.
*/
func (repository *authorRepository) ListAuthorsByRating(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM author a
		ORDER BY a.rating DESC, a.id ASC
	`, authorColumns)

	return repository.queryAuthors(context, query)
}

/*
SearchAuthors returns authors whose name starts with the given prefix.

The match is case-sensitive; an empty prefix matches every author.
*/
func (repository *authorRepository) SearchAuthors(context context.Context, prefix string) ([]*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM author a
		WHERE a.name LIKE $1 || '%%'
		ORDER BY a.name ASC
	`, authorColumns)

	return repository.queryAuthors(context, query, EscapeLikePrefix(prefix))
}

/*
CreateAuthor inserts a new author and backfills the generated identifier.
*/
func (repository *authorRepository) CreateAuthor(context context.Context, author *Author) error {
	query := `
		INSERT INTO author (name, bio, logo, rating)
		VALUES ($1, $2, $3, 0)
		RETURNING id
	`
	err := repository.pool.QueryRow(context, query, author.Name, author.Bio, author.Logo).Scan(&author.ID)
	return dberr.Wrap(err, "create_author")
}

/*
UpdateAuthor persists the author's mutable fields.

Rating is deliberately excluded: it only moves through the favorite flow.
*/
func (repository *authorRepository) UpdateAuthor(context context.Context, author *Author) error {
	query := `
		UPDATE author
		SET name = $2, bio = $3, logo = $4
		WHERE id = $1
	`
	tag, err := repository.pool.Exec(context, query, author.ID, author.Name, author.Bio, author.Logo)
	if err != nil {
		return dberr.Wrap(err, "update_author")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundWith("Author", FieldID, author.ID)
	}
	return nil
}

/*
DeleteAuthor removes an author. Join rows pointing at it are cascaded away by
the schema, which detaches the author from its albums and compositions without
touching them.
*/
func (repository *authorRepository) DeleteAuthor(context context.Context, id int64) error {
	tag, err := repository.pool.Exec(context, `DELETE FROM author WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_author")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundWith("Author", FieldID, id)
	}
	return nil
}

// # Related Collections

/*
AuthorAlbums returns album projections for every album linked to the author,
in link-insertion order.
*/
func (repository *authorRepository) AuthorAlbums(context context.Context, authorID int64) ([]*AlbumProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM album_author link
		JOIN album al ON al.id = link.album_id
		WHERE link.author_id = $1
		ORDER BY link.id ASC
	`, albumProjectionColumns)

	rows, err := repository.pool.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "author_albums")
	}
	defer rows.Close()

	return scanAlbumProjections(rows)
}

/*
AuthorCompositions returns composition projections for every composition
linked to the author, in link-insertion order.
*/
func (repository *authorRepository) AuthorCompositions(context context.Context, authorID int64) ([]*CompositionProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM composition_author link
		JOIN composition c ON c.id = link.composition_id
		WHERE link.author_id = $1
		ORDER BY link.id ASC
	`, compositionProjectionColumns)

	rows, err := repository.pool.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "author_compositions")
	}
	defer rows.Close()

	return scanCompositionProjections(rows)
}

/*
AuthorGenres returns the author's derived genres as full genre records.
*/
func (repository *authorRepository) AuthorGenres(context context.Context, authorID int64) ([]Genre, error) {
	query := `
		SELECT DISTINCT g.id, g.name
		FROM composition_author ca
		JOIN composition_genre cg ON cg.composition_id = ca.composition_id
		JOIN genre g ON g.id = cg.genre_id
		WHERE ca.author_id = $1
		ORDER BY g.name ASC
	`
	rows, err := repository.pool.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "author_genres")
	}
	defer rows.Close()

	return scanGenres(rows)
}

// # Link Management

/*
LinkAuthorAlbum attaches an album, resolved by its unique title, to the author.

The insert is idempotent: relinking an existing pair is a silent no-op, so the
rating-by-favorite invariants elsewhere never see duplicate rows.
*/
func (repository *authorRepository) LinkAuthorAlbum(context context.Context, authorID int64, albumTitle string) error {
	return pgx.BeginFunc(context, repository.pool, func(tx pgx.Tx) error {
		var albumID int64
		err := tx.QueryRow(context, `SELECT id FROM album WHERE title = $1`, albumTitle).Scan(&albumID)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFoundWith("Album", FieldTitle, albumTitle)
		}
		if err != nil {
			return dberr.Wrap(err, "resolve_album")
		}

		_, err = tx.Exec(context, `
			INSERT INTO album_author (album_id, author_id)
			VALUES ($1, $2)
			ON CONFLICT (album_id, author_id) DO NOTHING
		`, albumID, authorID)
		return dberr.Wrap(err, "link_author_album")
	})
}

/*
LinkAuthorComposition attaches a composition, resolved by its unique title, to
the author. Idempotent like [authorRepository.LinkAuthorAlbum].
*/
func (repository *authorRepository) LinkAuthorComposition(context context.Context, authorID int64, compositionTitle string) error {
	return pgx.BeginFunc(context, repository.pool, func(tx pgx.Tx) error {
		var compositionID int64
		err := tx.QueryRow(context, `SELECT id FROM composition WHERE title = $1`, compositionTitle).Scan(&compositionID)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFoundWith("Composition", FieldTitle, compositionTitle)
		}
		if err != nil {
			return dberr.Wrap(err, "resolve_composition")
		}

		_, err = tx.Exec(context, `
			INSERT INTO composition_author (composition_id, author_id)
			VALUES ($1, $2)
			ON CONFLICT (composition_id, author_id) DO NOTHING
		`, compositionID, authorID)
		return dberr.Wrap(err, "link_author_composition")
	})
}

// queryAuthors runs a query producing base author rows and hydrates the slice.
func (repository *authorRepository) queryAuthors(context context.Context, query string, args ...any) ([]*Author, error) {
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "query_authors")
	}
	defer rows.Close()

	var authors []*Author
	for rows.Next() {
		author := &Author{}
		if err := rows.Scan(&author.ID, &author.Name, &author.Bio, &author.Logo, &author.Rating); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, author)
	}
	return authors, rows.Err()
}

// scanGenres hydrates a genre slice from (id, name) rows.
func scanGenres(rows pgx.Rows) ([]Genre, error) {
	var genres []Genre
	for rows.Next() {
		var genre Genre
		if err := rows.Scan(&genre.ID, &genre.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, genre)
	}
	return genres, rows.Err()
}

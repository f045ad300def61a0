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

// compositionRepository implements the [CompositionRepository] interface using pgx.
type compositionRepository struct {
	pool *pgxpool.Pool
}

// NewCompositionRepository constructs a PostgreSQL backed composition store.
func NewCompositionRepository(pool *pgxpool.Pool) CompositionRepository {
	return &compositionRepository{pool: pool}
}

// compositionProjectionColumns hydrates a [CompositionProjection] in a single
// round-trip, with author and genre names aggregated in link-insertion order.
const compositionProjectionColumns = `
	c.id, c.title, c.duration, c.text, c.price, c.cover, c.rating,
	COALESCE((
		SELECT array_agg(au.name ORDER BY ca.id)
		FROM composition_author ca
		JOIN author au ON au.id = ca.author_id
		WHERE ca.composition_id = c.id
	), '{}') AS author_names,
	COALESCE((
		SELECT array_agg(g.name ORDER BY cg.id)
		FROM composition_genre cg
		JOIN genre g ON g.id = cg.genre_id
		WHERE cg.composition_id = c.id
	), '{}') AS genre_names`

/*
FindCompositionByID returns a single hydrated composition projection.
*/
func (repository *compositionRepository) FindCompositionByID(context context.Context, id int64) (*CompositionProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM composition c
		WHERE c.id = $1
	`, compositionProjectionColumns)

	projection := &CompositionProjection{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&projection.ID, &projection.Title, &projection.Duration, &projection.Text,
		&projection.Price, &projection.Cover, &projection.Rating,
		&projection.AuthorNames, &projection.GenreNames,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundWith("Composition", FieldID, id)
	}
	return projection, dberr.Wrap(err, "find_composition")
}

/*
FindCompositionByTitle returns a single hydrated composition projection
matched by its unique title. The match is exact and case-sensitive.
*/
func (repository *compositionRepository) FindCompositionByTitle(context context.Context, title string) (*CompositionProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM composition c
		WHERE c.title = $1
	`, compositionProjectionColumns)

	projection := &CompositionProjection{}
	err := repository.pool.QueryRow(context, query, title).Scan(
		&projection.ID, &projection.Title, &projection.Duration, &projection.Text,
		&projection.Price, &projection.Cover, &projection.Rating,
		&projection.AuthorNames, &projection.GenreNames,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundWith("Composition", FieldTitle, title)
	}
	return projection, dberr.Wrap(err, "find_composition_by_title")
}

/*
ListCompositions returns a paginated slice of hydrated composition projections
and the total count, via the COUNT(*) OVER() window function.
*/
func (repository *compositionRepository) ListCompositions(context context.Context, limit, offset int) ([]*CompositionProjection, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM composition c
		ORDER BY c.title ASC
		LIMIT $1 OFFSET $2
	`, compositionProjectionColumns)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_compositions")
	}
	defer rows.Close()

	var projections []*CompositionProjection
	var total int
	for rows.Next() {
		projection := &CompositionProjection{}
		err := rows.Scan(
			&projection.ID, &projection.Title, &projection.Duration, &projection.Text,
			&projection.Price, &projection.Cover, &projection.Rating,
			&projection.AuthorNames, &projection.GenreNames, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_composition")
		}
		projections = append(projections, projection)
	}
	return projections, total, rows.Err()
}

/*
ListCompositionsByRating returns all compositions ordered by popularity,
best first.
*/
func (repository *compositionRepository) ListCompositionsByRating(context context.Context) ([]*CompositionProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM composition c
		ORDER BY c.rating DESC, c.id ASC
	`, compositionProjectionColumns)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_compositions_by_rating")
	}
	defer rows.Close()

	return scanCompositionProjections(rows)
}

/*
SearchCompositions returns compositions whose title starts with the given
prefix, case-sensitively.
*/
func (repository *compositionRepository) SearchCompositions(context context.Context, prefix string) ([]*CompositionProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM composition c
		WHERE c.title LIKE $1 || '%%'
		ORDER BY c.title ASC
	`, compositionProjectionColumns)

	rows, err := repository.pool.Query(context, query, EscapeLikePrefix(prefix))
	if err != nil {
		return nil, dberr.Wrap(err, "search_compositions")
	}
	defer rows.Close()

	return scanCompositionProjections(rows)
}

/*
CreateComposition inserts a new composition and backfills the generated
identifier. A duplicate title surfaces as a CONFLICT.
*/
func (repository *compositionRepository) CreateComposition(context context.Context, composition *Composition) error {
	query := `
		INSERT INTO composition (title, duration, text, price, cover, rating)
		VALUES ($1, $2, $3, $4, $5, 0)
		RETURNING id
	`
	err := repository.pool.QueryRow(context, query,
		composition.Title, composition.Duration, composition.Text, composition.Price, composition.Cover,
	).Scan(&composition.ID)
	return dberr.Wrap(err, "create_composition")
}

/*
UpdateComposition persists the composition's mutable fields. Rating is
excluded.
*/
func (repository *compositionRepository) UpdateComposition(context context.Context, composition *Composition) error {
	query := `
		UPDATE composition
		SET title = $2, duration = $3, text = $4, price = $5, cover = $6
		WHERE id = $1
	`
	tag, err := repository.pool.Exec(context, query,
		composition.ID, composition.Title, composition.Duration, composition.Text,
		composition.Price, composition.Cover,
	)
	if err != nil {
		return dberr.Wrap(err, "update_composition")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundWith("Composition", FieldID, composition.ID)
	}
	return nil
}

/*
DeleteComposition removes a composition; its join rows cascade away with it,
which also removes it from album track lists and customer favorites.
*/
func (repository *compositionRepository) DeleteComposition(context context.Context, id int64) error {
	tag, err := repository.pool.Exec(context, `DELETE FROM composition WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_composition")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundWith("Composition", FieldID, id)
	}
	return nil
}

// # Related Collections

/*
CompositionAlbums returns the albums that carry this composition, as hydrated
projections in link-insertion order.
*/
func (repository *compositionRepository) CompositionAlbums(context context.Context, compositionID int64) ([]*AlbumProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM composition_album link
		JOIN album al ON al.id = link.album_id
		WHERE link.composition_id = $1
		ORDER BY link.id ASC
	`, albumProjectionColumns)

	rows, err := repository.pool.Query(context, query, compositionID)
	if err != nil {
		return nil, dberr.Wrap(err, "composition_albums")
	}
	defer rows.Close()

	return scanAlbumProjections(rows)
}

/*
CompositionAuthors returns the composition's authors in link-insertion order.
*/
func (repository *compositionRepository) CompositionAuthors(context context.Context, compositionID int64) ([]*Author, error) {
	query := `
		SELECT a.id, a.name, a.bio, a.logo, a.rating
		FROM composition_author link
		JOIN author a ON a.id = link.author_id
		WHERE link.composition_id = $1
		ORDER BY link.id ASC
	`
	rows, err := repository.pool.Query(context, query, compositionID)
	if err != nil {
		return nil, dberr.Wrap(err, "composition_authors")
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

/*
CompositionGenres returns the composition's genres in link-insertion order.
*/
func (repository *compositionRepository) CompositionGenres(context context.Context, compositionID int64) ([]Genre, error) {
	query := `
		SELECT g.id, g.name
		FROM composition_genre link
		JOIN genre g ON g.id = link.genre_id
		WHERE link.composition_id = $1
		ORDER BY link.id ASC
	`
	rows, err := repository.pool.Query(context, query, compositionID)
	if err != nil {
		return nil, dberr.Wrap(err, "composition_genres")
	}
	defer rows.Close()

	return scanGenres(rows)
}

// # Link Management

/*
LinkCompositionAuthor attaches an author, resolved by name, to the
composition.
*/
func (repository *compositionRepository) LinkCompositionAuthor(context context.Context, compositionID int64, authorName string) error {
	return pgx.BeginFunc(context, repository.pool, func(tx pgx.Tx) error {
		var authorID int64
		err := tx.QueryRow(context, `SELECT id FROM author WHERE name = $1`, authorName).Scan(&authorID)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFoundWith("Author", FieldName, authorName)
		}
		if err != nil {
			return dberr.Wrap(err, "resolve_author")
		}

		_, err = tx.Exec(context, `
			INSERT INTO composition_author (composition_id, author_id)
			VALUES ($1, $2)
			ON CONFLICT (composition_id, author_id) DO NOTHING
		`, compositionID, authorID)
		return dberr.Wrap(err, "link_composition_author")
	})
}

/*
LinkCompositionAlbum attaches an album, resolved by title, to the composition.
*/
func (repository *compositionRepository) LinkCompositionAlbum(context context.Context, compositionID int64, albumTitle string) error {
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
			INSERT INTO composition_album (composition_id, album_id)
			VALUES ($1, $2)
			ON CONFLICT (composition_id, album_id) DO NOTHING
		`, compositionID, albumID)
		return dberr.Wrap(err, "link_composition_album")
	})
}

/*
LinkCompositionGenre attaches a genre, resolved by name, to the composition.
Author and album genre lists pick the change up automatically since they are
derived on read.
*/
func (repository *compositionRepository) LinkCompositionGenre(context context.Context, compositionID int64, genreName string) error {
	return pgx.BeginFunc(context, repository.pool, func(tx pgx.Tx) error {
		var genreID int64
		err := tx.QueryRow(context, `SELECT id FROM genre WHERE name = $1`, genreName).Scan(&genreID)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFoundWith("Genre", FieldName, genreName)
		}
		if err != nil {
			return dberr.Wrap(err, "resolve_genre")
		}

		_, err = tx.Exec(context, `
			INSERT INTO composition_genre (composition_id, genre_id)
			VALUES ($1, $2)
			ON CONFLICT (composition_id, genre_id) DO NOTHING
		`, compositionID, genreID)
		return dberr.Wrap(err, "link_composition_genre")
	})
}

// scanCompositionProjections hydrates projections from
// compositionProjectionColumns rows.
func scanCompositionProjections(rows pgx.Rows) ([]*CompositionProjection, error) {
	var projections []*CompositionProjection
	for rows.Next() {
		projection := &CompositionProjection{}
		err := rows.Scan(
			&projection.ID, &projection.Title, &projection.Duration, &projection.Text,
			&projection.Price, &projection.Cover, &projection.Rating,
			&projection.AuthorNames, &projection.GenreNames,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_composition")
		}
		projections = append(projections, projection)
	}
	return projections, rows.Err()
}

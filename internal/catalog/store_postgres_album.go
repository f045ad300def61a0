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

// albumRepository implements the [AlbumRepository] interface using pgx.
type albumRepository struct {
	pool *pgxpool.Pool
}

// NewAlbumRepository constructs a PostgreSQL backed album store.
func NewAlbumRepository(pool *pgxpool.Pool) AlbumRepository {
	return &albumRepository{pool: pool}
}

// albumProjectionColumns hydrates an [AlbumProjection] in a single round-trip.
//
// Description: Sub-queries aggregate the related names and prices into
// Postgres arrays to prevent N+1 overhead. Ordering by the join row's serial
// id makes "first element" mean "first linked". Genres are derived from the
// album's compositions, so an album has no genre until it has tracks.
const albumProjectionColumns = `
	al.id, al.title, al.cover, al.year, al.rating,
	COALESCE((
		SELECT array_agg(au.name ORDER BY aa.id)
		FROM album_author aa
		JOIN author au ON au.id = aa.author_id
		WHERE aa.album_id = al.id
	), '{}') AS author_names,
	COALESCE((
		SELECT array_agg(c.price ORDER BY ca.id)
		FROM composition_album ca
		JOIN composition c ON c.id = ca.composition_id
		WHERE ca.album_id = al.id
	), '{}') AS track_prices,
	COALESCE((
		SELECT array_agg(DISTINCT g.name)
		FROM composition_album ca
		JOIN composition_genre cg ON cg.composition_id = ca.composition_id
		JOIN genre g ON g.id = cg.genre_id
		WHERE ca.album_id = al.id
	), '{}') AS genre_names`

/*
FindAlbumByID returns a single hydrated album projection.
*/
func (repository *albumRepository) FindAlbumByID(context context.Context, id int64) (*AlbumProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM album al
		WHERE al.id = $1
	`, albumProjectionColumns)

	projection := &AlbumProjection{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&projection.ID, &projection.Title, &projection.Cover, &projection.Year, &projection.Rating,
		&projection.AuthorNames, &projection.TrackPrices, &projection.GenreNames,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundWith("Album", FieldID, id)
	}
	return projection, dberr.Wrap(err, "find_album")
}

/*
FindAlbumByTitle returns a single hydrated album projection matched by its
unique title. The match is exact and case-sensitive.
*/
func (repository *albumRepository) FindAlbumByTitle(context context.Context, title string) (*AlbumProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM album al
		WHERE al.title = $1
	`, albumProjectionColumns)

	projection := &AlbumProjection{}
	err := repository.pool.QueryRow(context, query, title).Scan(
		&projection.ID, &projection.Title, &projection.Cover, &projection.Year, &projection.Rating,
		&projection.AuthorNames, &projection.TrackPrices, &projection.GenreNames,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFoundWith("Album", FieldTitle, title)
	}
	return projection, dberr.Wrap(err, "find_album_by_title")
}

/*
ListAlbums returns a paginated slice of hydrated album projections and the
total count, via the COUNT(*) OVER() window function.
*/
func (repository *albumRepository) ListAlbums(context context.Context, limit, offset int) ([]*AlbumProjection, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM album al
		ORDER BY al.title ASC
		LIMIT $1 OFFSET $2
	`, albumProjectionColumns)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_albums")
	}
	defer rows.Close()

	var projections []*AlbumProjection
	var total int
	for rows.Next() {
		projection := &AlbumProjection{}
		err := rows.Scan(
			&projection.ID, &projection.Title, &projection.Cover, &projection.Year, &projection.Rating,
			&projection.AuthorNames, &projection.TrackPrices, &projection.GenreNames, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_album")
		}
		projections = append(projections, projection)
	}
	return projections, total, rows.Err()
}

/*
ListAlbumsByRating returns all albums ordered by popularity, best first.
*/
func (repository *albumRepository) ListAlbumsByRating(context context.Context) ([]*AlbumProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM album al
		ORDER BY al.rating DESC, al.id ASC
	`, albumProjectionColumns)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_albums_by_rating")
	}
	defer rows.Close()

	return scanAlbumProjections(rows)
}

/*
SearchAlbums returns albums whose title starts with the given prefix,
case-sensitively.
*/
func (repository *albumRepository) SearchAlbums(context context.Context, prefix string) ([]*AlbumProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM album al
		WHERE al.title LIKE $1 || '%%'
		ORDER BY al.title ASC
	`, albumProjectionColumns)

	rows, err := repository.pool.Query(context, query, EscapeLikePrefix(prefix))
	if err != nil {
		return nil, dberr.Wrap(err, "search_albums")
	}
	defer rows.Close()

	return scanAlbumProjections(rows)
}

/*
CreateAlbum inserts a new album and backfills the generated identifier.

A duplicate title surfaces as a CONFLICT through the unique constraint.
*/
func (repository *albumRepository) CreateAlbum(context context.Context, album *Album) error {
	query := `
		INSERT INTO album (title, cover, year, rating)
		VALUES ($1, $2, $3, 0)
		RETURNING id
	`
	err := repository.pool.QueryRow(context, query, album.Title, album.Cover, album.Year).Scan(&album.ID)
	return dberr.Wrap(err, "create_album")
}

/*
UpdateAlbum persists the album's mutable fields. Rating is excluded.
*/
func (repository *albumRepository) UpdateAlbum(context context.Context, album *Album) error {
	query := `
		UPDATE album
		SET title = $2, cover = $3, year = $4
		WHERE id = $1
	`
	tag, err := repository.pool.Exec(context, query, album.ID, album.Title, album.Cover, album.Year)
	if err != nil {
		return dberr.Wrap(err, "update_album")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundWith("Album", FieldID, album.ID)
	}
	return nil
}

/*
DeleteAlbum removes an album; its join rows cascade away with it.
*/
func (repository *albumRepository) DeleteAlbum(context context.Context, id int64) error {
	tag, err := repository.pool.Exec(context, `DELETE FROM album WHERE id = $1`, id)
	if err != nil {
		return dberr.Wrap(err, "delete_album")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFoundWith("Album", FieldID, id)
	}
	return nil
}

// # Related Collections

/*
AlbumAuthors returns the album's authors in link-insertion order.
*/
func (repository *albumRepository) AlbumAuthors(context context.Context, albumID int64) ([]*Author, error) {
	query := `
		SELECT a.id, a.name, a.bio, a.logo, a.rating
		FROM album_author link
		JOIN author a ON a.id = link.author_id
		WHERE link.album_id = $1
		ORDER BY link.id ASC
	`
	rows, err := repository.pool.Query(context, query, albumID)
	if err != nil {
		return nil, dberr.Wrap(err, "album_authors")
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
AlbumCompositions returns the album's tracks as hydrated composition
projections, in link-insertion order.
*/
func (repository *albumRepository) AlbumCompositions(context context.Context, albumID int64) ([]*CompositionProjection, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM composition_album link
		JOIN composition c ON c.id = link.composition_id
		WHERE link.album_id = $1
		ORDER BY link.id ASC
	`, compositionProjectionColumns)

	rows, err := repository.pool.Query(context, query, albumID)
	if err != nil {
		return nil, dberr.Wrap(err, "album_compositions")
	}
	defer rows.Close()

	return scanCompositionProjections(rows)
}

/*
AlbumGenres returns the album's derived genres as full genre records.
*/
func (repository *albumRepository) AlbumGenres(context context.Context, albumID int64) ([]Genre, error) {
	query := `
		SELECT DISTINCT g.id, g.name
		FROM composition_album ca
		JOIN composition_genre cg ON cg.composition_id = ca.composition_id
		JOIN genre g ON g.id = cg.genre_id
		WHERE ca.album_id = $1
		ORDER BY g.name ASC
	`
	rows, err := repository.pool.Query(context, query, albumID)
	if err != nil {
		return nil, dberr.Wrap(err, "album_genres")
	}
	defer rows.Close()

	return scanGenres(rows)
}

// # Link Management

/*
LinkAlbumAuthor attaches an author, resolved by name, to the album. The shared
album_author row also makes the album visible from the author's side.
*/
func (repository *albumRepository) LinkAlbumAuthor(context context.Context, albumID int64, authorName string) error {
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
			INSERT INTO album_author (album_id, author_id)
			VALUES ($1, $2)
			ON CONFLICT (album_id, author_id) DO NOTHING
		`, albumID, authorID)
		return dberr.Wrap(err, "link_album_author")
	})
}

/*
LinkAlbumComposition attaches a composition, resolved by title, to the album.
*/
func (repository *albumRepository) LinkAlbumComposition(context context.Context, albumID int64, compositionTitle string) error {
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
			INSERT INTO composition_album (composition_id, album_id)
			VALUES ($1, $2)
			ON CONFLICT (composition_id, album_id) DO NOTHING
		`, compositionID, albumID)
		return dberr.Wrap(err, "link_album_composition")
	})
}

// scanAlbumProjections hydrates projections from albumProjectionColumns rows.
func scanAlbumProjections(rows pgx.Rows) ([]*AlbumProjection, error) {
	var projections []*AlbumProjection
	for rows.Next() {
		projection := &AlbumProjection{}
		err := rows.Scan(
			&projection.ID, &projection.Title, &projection.Cover, &projection.Year, &projection.Rating,
			&projection.AuthorNames, &projection.TrackPrices, &projection.GenreNames,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_album")
		}
		projections = append(projections, projection)
	}
	return projections, rows.Err()
}

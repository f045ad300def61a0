// Copyright (c) 2026 audio-server. All rights reserved.

package favorites

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mfungorn/audio-server/internal/catalog"
	"github.com/Mfungorn/audio-server/internal/platform/apperr"
	"github.com/Mfungorn/audio-server/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed favorites store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
AddAuthor favorites an author for a customer in one atomic statement.

Description: The CTE inserts the favorite row only when the pair is new, and
the rating update is driven off the rows the insert actually produced. Link
and counter therefore move together or not at all; a repeated favorite inserts
nothing and so increments nothing, no matter how the call is raced.
*/
func (repository *PostgresRepository) AddAuthor(context context.Context, customerID, authorID int64) error {
	query := `
		WITH added AS (
			INSERT INTO customer_author (customer_id, author_id)
			VALUES ($1, $2)
			ON CONFLICT (customer_id, author_id) DO NOTHING
			RETURNING author_id
		)
		UPDATE author
		SET rating = rating + 1
		FROM added
		WHERE author.id = added.author_id
	`
	_, err := repository.pool.Exec(context, query, customerID, authorID)
	return wrapFavoriteErr(err, "Author", authorID, customerID)
}

/*
AddComposition favorites a composition for a customer, with the same atomic
insert-then-conditional-increment shape as [PostgresRepository.AddAuthor].
*/
func (repository *PostgresRepository) AddComposition(context context.Context, customerID, compositionID int64) error {
	query := `
		WITH added AS (
			INSERT INTO customer_composition (customer_id, composition_id)
			VALUES ($1, $2)
			ON CONFLICT (customer_id, composition_id) DO NOTHING
			RETURNING composition_id
		)
		UPDATE composition
		SET rating = rating + 1
		FROM added
		WHERE composition.id = added.composition_id
	`
	_, err := repository.pool.Exec(context, query, customerID, compositionID)
	return wrapFavoriteErr(err, "Composition", compositionID, customerID)
}

/*
FavoriteAuthors returns the customer's favorite authors, oldest first.
*/
func (repository *PostgresRepository) FavoriteAuthors(context context.Context, customerID int64) ([]*catalog.Author, error) {
	query := `
		SELECT a.id, a.name, a.bio, a.logo, a.rating
		FROM customer_author link
		JOIN author a ON a.id = link.author_id
		WHERE link.customer_id = $1
		ORDER BY link.id ASC
	`
	rows, err := repository.pool.Query(context, query, customerID)
	if err != nil {
		return nil, dberr.Wrap(err, "favorite_authors")
	}
	defer rows.Close()

	var authors []*catalog.Author
	for rows.Next() {
		author := &catalog.Author{}
		if err := rows.Scan(&author.ID, &author.Name, &author.Bio, &author.Logo, &author.Rating); err != nil {
			return nil, dberr.Wrap(err, "scan_favorite_author")
		}
		authors = append(authors, author)
	}
	return authors, rows.Err()
}

/*
FavoriteCompositions returns the customer's favorite compositions hydrated
with author and genre names, oldest favorite first.
*/
func (repository *PostgresRepository) FavoriteCompositions(context context.Context, customerID int64) ([]*catalog.CompositionProjection, error) {
	query := `
		SELECT
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
			), '{}') AS genre_names
		FROM customer_composition link
		JOIN composition c ON c.id = link.composition_id
		WHERE link.customer_id = $1
		ORDER BY link.id ASC
	`
	rows, err := repository.pool.Query(context, query, customerID)
	if err != nil {
		return nil, dberr.Wrap(err, "favorite_compositions")
	}
	defer rows.Close()

	var projections []*catalog.CompositionProjection
	for rows.Next() {
		projection := &catalog.CompositionProjection{}
		err := rows.Scan(
			&projection.ID, &projection.Title, &projection.Duration, &projection.Text,
			&projection.Price, &projection.Cover, &projection.Rating,
			&projection.AuthorNames, &projection.GenreNames,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_favorite_composition")
		}
		projections = append(projections, projection)
	}
	return projections, rows.Err()
}

// wrapFavoriteErr turns the foreign key violations raised by the favorite
// insert into NOT_FOUND errors naming the side that is missing.
func wrapFavoriteErr(err error, resource string, targetID, customerID int64) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		if strings.Contains(pgErr.ConstraintName, "customer_id") {
			return apperr.NotFoundWith("Customer", "id", customerID)
		}
		return apperr.NotFoundWith(resource, "id", targetID)
	}
	return dberr.Wrap(err, "add_favorite")
}

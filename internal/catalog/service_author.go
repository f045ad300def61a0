// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

import (
	"context"
	"log/slog"

	"github.com/Mfungorn/audio-server/internal/platform/validate"
)

// AuthorService wraps the author repository with validation and audit logging.
type AuthorService struct {
	repository AuthorRepository
	logger     *slog.Logger
}

func NewAuthorService(repository AuthorRepository, logger *slog.Logger) *AuthorService {
	return &AuthorService{
		repository: repository,
		logger:     logger,
	}
}

func (service *AuthorService) ListAuthors(context context.Context, limit, offset int) ([]*Author, int, error) {
	return service.repository.ListAuthors(context, limit, offset)
}

func (service *AuthorService) PopularAuthors(context context.Context) ([]*Author, error) {
	return service.repository.ListAuthorsByRating(context)
}

func (service *AuthorService) GetAuthor(context context.Context, id int64) (*Author, error) {
	return service.repository.FindAuthorByID(context, id)
}

func (service *AuthorService) GetAuthorByName(context context.Context, name string) (*Author, error) {
	return service.repository.FindAuthorByName(context, name)
}

func (service *AuthorService) SearchAuthors(context context.Context, prefix string) ([]*Author, error) {
	return service.repository.SearchAuthors(context, prefix)
}

func (service *AuthorService) CreateAuthor(context context.Context, author *Author) error {
	if author.Bio == "" {
		author.Bio = DefaultAuthorBio
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, author.Name).MaxLen(FieldName, author.Name, 200)
	validator.MaxLen(FieldBio, author.Bio, 4000)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repository.CreateAuthor(context, author); err != nil {
		return err
	}

	service.logger.Info("author_created", slog.String("name", author.Name))
	return nil
}

func (service *AuthorService) UpdateAuthor(context context.Context, id int64, author *Author) error {
	author.ID = id
	if author.Bio == "" {
		author.Bio = DefaultAuthorBio
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, author.Name).MaxLen(FieldName, author.Name, 200)
	validator.MaxLen(FieldBio, author.Bio, 4000)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repository.UpdateAuthor(context, author); err != nil {
		return err
	}

	service.logger.Info("author_updated", slog.Int64("author_id", author.ID))
	return nil
}

func (service *AuthorService) DeleteAuthor(context context.Context, id int64) error {
	if err := service.repository.DeleteAuthor(context, id); err != nil {
		return err
	}

	service.logger.Warn("author_deleted", slog.Int64("author_id", id))
	return nil
}

// # Relationships

func (service *AuthorService) AuthorAlbums(context context.Context, id int64) ([]*AlbumProjection, error) {
	// Existence check so a missing author reads as NOT_FOUND, not an empty list.
	if _, err := service.repository.FindAuthorByID(context, id); err != nil {
		return nil, err
	}
	return service.repository.AuthorAlbums(context, id)
}

func (service *AuthorService) AuthorCompositions(context context.Context, id int64) ([]*CompositionProjection, error) {
	if _, err := service.repository.FindAuthorByID(context, id); err != nil {
		return nil, err
	}
	return service.repository.AuthorCompositions(context, id)
}

func (service *AuthorService) AuthorGenres(context context.Context, id int64) ([]Genre, error) {
	if _, err := service.repository.FindAuthorByID(context, id); err != nil {
		return nil, err
	}
	return service.repository.AuthorGenres(context, id)
}

// AddAlbum links an existing album, identified by title, to the author.
func (service *AuthorService) AddAlbum(context context.Context, authorID int64, albumTitle string) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, albumTitle)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.repository.FindAuthorByID(context, authorID); err != nil {
		return err
	}
	if err := service.repository.LinkAuthorAlbum(context, authorID, albumTitle); err != nil {
		return err
	}

	service.logger.Info("author_album_linked",
		slog.Int64("author_id", authorID),
		slog.String("album_title", albumTitle),
	)
	return nil
}

// AddComposition links an existing composition, identified by title, to the
// author.
func (service *AuthorService) AddComposition(context context.Context, authorID int64, compositionTitle string) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, compositionTitle)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.repository.FindAuthorByID(context, authorID); err != nil {
		return err
	}
	if err := service.repository.LinkAuthorComposition(context, authorID, compositionTitle); err != nil {
		return err
	}

	service.logger.Info("author_composition_linked",
		slog.Int64("author_id", authorID),
		slog.String("composition_title", compositionTitle),
	)
	return nil
}

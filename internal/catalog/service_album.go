// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Mfungorn/audio-server/internal/platform/validate"
)

// AlbumService wraps the album repository with validation and audit logging.
type AlbumService struct {
	repository AlbumRepository
	logger     *slog.Logger
}

func NewAlbumService(repository AlbumRepository, logger *slog.Logger) *AlbumService {
	return &AlbumService{
		repository: repository,
		logger:     logger,
	}
}

func (service *AlbumService) ListAlbums(context context.Context, limit, offset int) ([]*AlbumProjection, int, error) {
	return service.repository.ListAlbums(context, limit, offset)
}

func (service *AlbumService) PopularAlbums(context context.Context) ([]*AlbumProjection, error) {
	return service.repository.ListAlbumsByRating(context)
}

func (service *AlbumService) GetAlbum(context context.Context, id int64) (*AlbumProjection, error) {
	return service.repository.FindAlbumByID(context, id)
}

func (service *AlbumService) GetAlbumByTitle(context context.Context, title string) (*AlbumProjection, error) {
	return service.repository.FindAlbumByTitle(context, title)
}

func (service *AlbumService) SearchAlbums(context context.Context, prefix string) ([]*AlbumProjection, error) {
	return service.repository.SearchAlbums(context, prefix)
}

func (service *AlbumService) CreateAlbum(context context.Context, album *Album) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, album.Title).MaxLen(FieldTitle, album.Title, 200)
	if album.Year != nil {
		validator.Range("year", *album.Year, 1000, time.Now().Year()+1)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repository.CreateAlbum(context, album); err != nil {
		return err
	}

	service.logger.Info("album_created", slog.String("title", album.Title))
	return nil
}

func (service *AlbumService) UpdateAlbum(context context.Context, id int64, album *Album) error {
	album.ID = id

	validator := &validate.Validator{}
	validator.Required(FieldTitle, album.Title).MaxLen(FieldTitle, album.Title, 200)
	if album.Year != nil {
		validator.Range("year", *album.Year, 1000, time.Now().Year()+1)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repository.UpdateAlbum(context, album); err != nil {
		return err
	}

	service.logger.Info("album_updated", slog.Int64("album_id", album.ID))
	return nil
}

func (service *AlbumService) DeleteAlbum(context context.Context, id int64) error {
	if err := service.repository.DeleteAlbum(context, id); err != nil {
		return err
	}

	service.logger.Warn("album_deleted", slog.Int64("album_id", id))
	return nil
}

// # Relationships

func (service *AlbumService) AlbumAuthors(context context.Context, id int64) ([]*Author, error) {
	if _, err := service.repository.FindAlbumByID(context, id); err != nil {
		return nil, err
	}
	return service.repository.AlbumAuthors(context, id)
}

func (service *AlbumService) AlbumCompositions(context context.Context, id int64) ([]*CompositionProjection, error) {
	if _, err := service.repository.FindAlbumByID(context, id); err != nil {
		return nil, err
	}
	return service.repository.AlbumCompositions(context, id)
}

func (service *AlbumService) AlbumGenres(context context.Context, id int64) ([]Genre, error) {
	if _, err := service.repository.FindAlbumByID(context, id); err != nil {
		return nil, err
	}
	return service.repository.AlbumGenres(context, id)
}

// AddAuthor links an existing author, identified by name, to the album.
func (service *AlbumService) AddAuthor(context context.Context, albumID int64, authorName string) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, authorName)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.repository.FindAlbumByID(context, albumID); err != nil {
		return err
	}
	if err := service.repository.LinkAlbumAuthor(context, albumID, authorName); err != nil {
		return err
	}

	service.logger.Info("album_author_linked",
		slog.Int64("album_id", albumID),
		slog.String("author_name", authorName),
	)
	return nil
}

// AddComposition links an existing composition, identified by title, to the
// album. The album price and track count shift automatically since both are
// derived.
func (service *AlbumService) AddComposition(context context.Context, albumID int64, compositionTitle string) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, compositionTitle)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.repository.FindAlbumByID(context, albumID); err != nil {
		return err
	}
	if err := service.repository.LinkAlbumComposition(context, albumID, compositionTitle); err != nil {
		return err
	}

	service.logger.Info("album_composition_linked",
		slog.Int64("album_id", albumID),
		slog.String("composition_title", compositionTitle),
	)
	return nil
}

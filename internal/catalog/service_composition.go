// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

import (
	"context"
	"log/slog"

	"github.com/Mfungorn/audio-server/internal/platform/validate"
)

// CompositionService wraps the composition repository with validation and
// audit logging.
type CompositionService struct {
	repository CompositionRepository
	logger     *slog.Logger
}

func NewCompositionService(repository CompositionRepository, logger *slog.Logger) *CompositionService {
	return &CompositionService{
		repository: repository,
		logger:     logger,
	}
}

func (service *CompositionService) ListCompositions(context context.Context, limit, offset int) ([]*CompositionProjection, int, error) {
	return service.repository.ListCompositions(context, limit, offset)
}

func (service *CompositionService) PopularCompositions(context context.Context) ([]*CompositionProjection, error) {
	return service.repository.ListCompositionsByRating(context)
}

func (service *CompositionService) GetComposition(context context.Context, id int64) (*CompositionProjection, error) {
	return service.repository.FindCompositionByID(context, id)
}

func (service *CompositionService) GetCompositionByTitle(context context.Context, title string) (*CompositionProjection, error) {
	return service.repository.FindCompositionByTitle(context, title)
}

func (service *CompositionService) SearchCompositions(context context.Context, prefix string) ([]*CompositionProjection, error) {
	return service.repository.SearchCompositions(context, prefix)
}

func (service *CompositionService) CreateComposition(context context.Context, composition *Composition) error {
	if err := validateComposition(composition); err != nil {
		return err
	}

	if err := service.repository.CreateComposition(context, composition); err != nil {
		return err
	}

	service.logger.Info("composition_created", slog.String("title", composition.Title))
	return nil
}

func (service *CompositionService) UpdateComposition(context context.Context, id int64, composition *Composition) error {
	composition.ID = id
	if err := validateComposition(composition); err != nil {
		return err
	}

	if err := service.repository.UpdateComposition(context, composition); err != nil {
		return err
	}

	service.logger.Info("composition_updated", slog.Int64("composition_id", composition.ID))
	return nil
}

func (service *CompositionService) DeleteComposition(context context.Context, id int64) error {
	if err := service.repository.DeleteComposition(context, id); err != nil {
		return err
	}

	service.logger.Warn("composition_deleted", slog.Int64("composition_id", id))
	return nil
}

func validateComposition(composition *Composition) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, composition.Title).MaxLen(FieldTitle, composition.Title, 200)
	validator.Min("duration", composition.Duration, 0)
	validator.Min("price", composition.Price, 0)
	return validator.Err()
}

// # Relationships

func (service *CompositionService) CompositionAlbums(context context.Context, id int64) ([]*AlbumProjection, error) {
	if _, err := service.repository.FindCompositionByID(context, id); err != nil {
		return nil, err
	}
	return service.repository.CompositionAlbums(context, id)
}

func (service *CompositionService) CompositionAuthors(context context.Context, id int64) ([]*Author, error) {
	if _, err := service.repository.FindCompositionByID(context, id); err != nil {
		return nil, err
	}
	return service.repository.CompositionAuthors(context, id)
}

func (service *CompositionService) CompositionGenres(context context.Context, id int64) ([]Genre, error) {
	if _, err := service.repository.FindCompositionByID(context, id); err != nil {
		return nil, err
	}
	return service.repository.CompositionGenres(context, id)
}

// AddAuthor links an existing author, identified by name, to the composition.
func (service *CompositionService) AddAuthor(context context.Context, compositionID int64, authorName string) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, authorName)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.repository.FindCompositionByID(context, compositionID); err != nil {
		return err
	}
	if err := service.repository.LinkCompositionAuthor(context, compositionID, authorName); err != nil {
		return err
	}

	service.logger.Info("composition_author_linked",
		slog.Int64("composition_id", compositionID),
		slog.String("author_name", authorName),
	)
	return nil
}

// AddAlbum links an existing album, identified by title, to the composition.
func (service *CompositionService) AddAlbum(context context.Context, compositionID int64, albumTitle string) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, albumTitle)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.repository.FindCompositionByID(context, compositionID); err != nil {
		return err
	}
	if err := service.repository.LinkCompositionAlbum(context, compositionID, albumTitle); err != nil {
		return err
	}

	service.logger.Info("composition_album_linked",
		slog.Int64("composition_id", compositionID),
		slog.String("album_title", albumTitle),
	)
	return nil
}

// AddGenre links an existing genre, identified by name, to the composition.
func (service *CompositionService) AddGenre(context context.Context, compositionID int64, genreName string) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, genreName)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.repository.FindCompositionByID(context, compositionID); err != nil {
		return err
	}
	if err := service.repository.LinkCompositionGenre(context, compositionID, genreName); err != nil {
		return err
	}

	service.logger.Info("composition_genre_linked",
		slog.Int64("composition_id", compositionID),
		slog.String("genre_name", genreName),
	)
	return nil
}

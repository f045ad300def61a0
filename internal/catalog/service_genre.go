// Copyright (c) 2026 audio-server. All rights reserved.

package catalog

import (
	"context"
	"log/slog"

	"github.com/Mfungorn/audio-server/internal/platform/validate"
)

// GenreService wraps the genre repository with validation and audit logging.
type GenreService struct {
	repository GenreRepository
	logger     *slog.Logger
}

func NewGenreService(repository GenreRepository, logger *slog.Logger) *GenreService {
	return &GenreService{
		repository: repository,
		logger:     logger,
	}
}

func (service *GenreService) ListGenres(context context.Context) ([]Genre, error) {
	return service.repository.ListGenres(context)
}

func (service *GenreService) GetGenreByName(context context.Context, name string) (*Genre, error) {
	return service.repository.FindGenreByName(context, name)
}

func (service *GenreService) SearchGenres(context context.Context, prefix string) ([]Genre, error) {
	return service.repository.SearchGenres(context, prefix)
}

func (service *GenreService) CreateGenre(context context.Context, genre *Genre) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, genre.Name).MaxLen(FieldName, genre.Name, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repository.CreateGenre(context, genre); err != nil {
		return err
	}

	service.logger.Info("genre_created", slog.String("name", genre.Name))
	return nil
}

func (service *GenreService) DeleteGenre(context context.Context, name string) error {
	if err := service.repository.DeleteGenre(context, name); err != nil {
		return err
	}

	service.logger.Warn("genre_deleted", slog.String("name", name))
	return nil
}

// GenreCompositions returns the genre's compositions, most popular first.
func (service *GenreService) GenreCompositions(context context.Context, name string) ([]*CompositionProjection, error) {
	if _, err := service.repository.FindGenreByName(context, name); err != nil {
		return nil, err
	}
	return service.repository.GenreCompositions(context, name)
}

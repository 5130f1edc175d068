package usecase

import (
	"errors"
	"fmt"

	"reviewdb/internal/entity"
	"reviewdb/internal/repo/persistent"
	"reviewdb/pkg/logger"

	"gorm.io/gorm"
)

// TaxonomyInput covers both categories and genres: a display name plus the
// unique URL-safe slug used as the public lookup key.
type TaxonomyInput struct {
	Name string
	Slug string
}

type TaxonomyUseCase interface {
	ListCategories(search string, limit, offset int) ([]*entity.Category, error)
	GetCategory(slug string) (*entity.Category, error)
	CreateCategory(input TaxonomyInput) (*entity.Category, error)
	DeleteCategory(slug string) error

	ListGenres(search string, limit, offset int) ([]*entity.Genre, error)
	GetGenre(slug string) (*entity.Genre, error)
	CreateGenre(input TaxonomyInput) (*entity.Genre, error)
	DeleteGenre(slug string) error
}

type taxonomyUseCase struct {
	categoryRepo persistent.CategoryRepository
	genreRepo    persistent.GenreRepository
	logger       *logger.Logger
}

func NewTaxonomyUseCase(
	categoryRepo persistent.CategoryRepository,
	genreRepo persistent.GenreRepository,
	logger *logger.Logger,
) TaxonomyUseCase {
	return &taxonomyUseCase{
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
		logger:       logger,
	}
}

func validateTaxonomyInput(input TaxonomyInput) error {
	v := &ValidationError{}
	validateTaxonomyName(v, input.Name)
	validateSlug(v, input.Slug)
	if v.HasErrors() {
		return v
	}
	return nil
}

func (uc *taxonomyUseCase) ListCategories(search string, limit, offset int) ([]*entity.Category, error) {
	return uc.categoryRepo.List(search, limit, offset)
}

func (uc *taxonomyUseCase) GetCategory(slug string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (uc *taxonomyUseCase) CreateCategory(input TaxonomyInput) (*entity.Category, error) {
	if err := validateTaxonomyInput(input); err != nil {
		return nil, err
	}

	category := &entity.Category{Name: input.Name, Slug: input.Slug}
	if err := uc.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newFieldError("slug", "slug is already taken")
		}
		uc.logger.Error("Failed to create category: %v", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (uc *taxonomyUseCase) DeleteCategory(slug string) error {
	if err := uc.categoryRepo.DeleteBySlug(slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (uc *taxonomyUseCase) ListGenres(search string, limit, offset int) ([]*entity.Genre, error) {
	return uc.genreRepo.List(search, limit, offset)
}

func (uc *taxonomyUseCase) GetGenre(slug string) (*entity.Genre, error) {
	genre, err := uc.genreRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return genre, nil
}

func (uc *taxonomyUseCase) CreateGenre(input TaxonomyInput) (*entity.Genre, error) {
	if err := validateTaxonomyInput(input); err != nil {
		return nil, err
	}

	genre := &entity.Genre{Name: input.Name, Slug: input.Slug}
	if err := uc.genreRepo.Create(genre); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newFieldError("slug", "slug is already taken")
		}
		uc.logger.Error("Failed to create genre: %v", err)
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return genre, nil
}

func (uc *taxonomyUseCase) DeleteGenre(slug string) error {
	if err := uc.genreRepo.DeleteBySlug(slug); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

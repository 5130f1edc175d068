package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"reviewdb/internal/entity"
	"reviewdb/internal/repo/persistent"
	"reviewdb/pkg/logger"

	"gorm.io/gorm"
)

// TitleInput is the write shape: category and genres are referenced by slug,
// not by id.
type TitleInput struct {
	Name        string
	Year        int
	Description string
	Category    string
	Genres      []string
}

type TitlePatch struct {
	Name        *string
	Year        *int
	Description *string
	Category    *string
	Genres      *[]string
}

type TitleUseCase interface {
	List(filter persistent.TitleFilter, limit, offset int) ([]*entity.Title, error)
	Get(id int64) (*entity.Title, error)
	Create(input TitleInput) (*entity.Title, error)
	Update(id int64, patch TitlePatch) (*entity.Title, error)
	Delete(id int64) error
}

type titleUseCase struct {
	titleRepo    persistent.TitleRepository
	categoryRepo persistent.CategoryRepository
	genreRepo    persistent.GenreRepository
	ratings      *RatingCache
	logger       *logger.Logger
}

func NewTitleUseCase(
	titleRepo persistent.TitleRepository,
	categoryRepo persistent.CategoryRepository,
	genreRepo persistent.GenreRepository,
	ratings *RatingCache,
	logger *logger.Logger,
) TitleUseCase {
	return &titleUseCase{
		titleRepo:    titleRepo,
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
		ratings:      ratings,
		logger:       logger,
	}
}

// roundRating rounds to one decimal with ties going to the even digit, the
// same behavior as Python's round(avg, 1).
func roundRating(avg *float64) *float64 {
	if avg == nil {
		return nil
	}
	rounded := math.RoundToEven(*avg*10) / 10
	return &rounded
}

func (uc *titleUseCase) List(filter persistent.TitleFilter, limit, offset int) ([]*entity.Title, error) {
	titles, err := uc.titleRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(titles))
	for i, title := range titles {
		ids[i] = title.ID
	}
	scores, err := uc.titleRepo.AvgScores(ids)
	if err != nil {
		return nil, err
	}
	for _, title := range titles {
		if avg, ok := scores[title.ID]; ok {
			title.Rating = roundRating(&avg)
		}
	}
	return titles, nil
}

func (uc *titleUseCase) Get(id int64) (*entity.Title, error) {
	title, err := uc.titleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ctx := context.Background()
	if rating, ok := uc.ratings.Get(ctx, id); ok {
		title.Rating = rating
		return title, nil
	}

	avg, err := uc.titleRepo.AvgScore(id)
	if err != nil {
		return nil, err
	}
	title.Rating = roundRating(avg)
	uc.ratings.Set(ctx, id, title.Rating)
	return title, nil
}

func (uc *titleUseCase) Create(input TitleInput) (*entity.Title, error) {
	v := &ValidationError{}
	if input.Name == "" || len(input.Name) > maxNameLen {
		v.Add("name", "must be between 1 and 256 characters")
	}
	validateYear(v, input.Year)

	category, genres := uc.resolveRefs(v, input.Category, input.Genres)
	if v.HasErrors() {
		return nil, v
	}

	title := &entity.Title{
		Name:        input.Name,
		Year:        input.Year,
		Description: input.Description,
		Category:    category,
		Genres:      genres,
	}
	if err := uc.titleRepo.Create(title); err != nil {
		uc.logger.Error("Failed to create title: %v", err)
		return nil, fmt.Errorf("failed to create title: %w", err)
	}
	return title, nil
}

func (uc *titleUseCase) Update(id int64, patch TitlePatch) (*entity.Title, error) {
	title, err := uc.titleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	v := &ValidationError{}
	if patch.Name != nil {
		if *patch.Name == "" || len(*patch.Name) > maxNameLen {
			v.Add("name", "must be between 1 and 256 characters")
		} else {
			title.Name = *patch.Name
		}
	}
	if patch.Year != nil {
		validateYear(v, *patch.Year)
		title.Year = *patch.Year
	}
	if patch.Description != nil {
		title.Description = *patch.Description
	}
	if patch.Category != nil {
		category, err := uc.categoryRepo.GetBySlug(*patch.Category)
		if err != nil {
			v.Add("category", fmt.Sprintf("unknown category slug %q", *patch.Category))
		} else {
			title.Category = category
		}
	}
	if patch.Genres != nil {
		genres := uc.resolveGenres(v, *patch.Genres)
		title.Genres = genres
	}
	if v.HasErrors() {
		return nil, v
	}

	if err := uc.titleRepo.Update(title); err != nil {
		uc.logger.Error("Failed to update title %d: %v", id, err)
		return nil, fmt.Errorf("failed to update title: %w", err)
	}
	return uc.Get(id)
}

func (uc *titleUseCase) Delete(id int64) error {
	if err := uc.titleRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	uc.ratings.Invalidate(context.Background(), id)
	return nil
}

func (uc *titleUseCase) resolveRefs(v *ValidationError, categorySlug string, genreSlugs []string) (*entity.Category, []entity.Genre) {
	var category *entity.Category
	if categorySlug != "" {
		found, err := uc.categoryRepo.GetBySlug(categorySlug)
		if err != nil {
			v.Add("category", fmt.Sprintf("unknown category slug %q", categorySlug))
		} else {
			category = found
		}
	}
	return category, uc.resolveGenres(v, genreSlugs)
}

func (uc *titleUseCase) resolveGenres(v *ValidationError, slugs []string) []entity.Genre {
	if len(slugs) == 0 {
		return nil
	}

	found, err := uc.genreRepo.GetBySlugs(slugs)
	if err != nil {
		uc.logger.Error("Failed to resolve genre slugs: %v", err)
		v.Add("genre", "failed to resolve genre slugs")
		return nil
	}

	bySlug := make(map[string]*entity.Genre, len(found))
	for _, genre := range found {
		bySlug[genre.Slug] = genre
	}

	genres := make([]entity.Genre, 0, len(slugs))
	for _, slug := range slugs {
		genre, ok := bySlug[slug]
		if !ok {
			v.Add("genre", fmt.Sprintf("unknown genre slug %q", slug))
			continue
		}
		genres = append(genres, *genre)
	}
	return genres
}

package persistent

import (
	"reviewdb/internal/entity"
	"reviewdb/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *entity.Category) error
	GetBySlug(slug string) (*entity.Category, error)
	List(search string, limit, offset int) ([]*entity.Category, error)
	DeleteBySlug(slug string) error
}

type GenreRepository interface {
	Create(genre *entity.Genre) error
	GetBySlug(slug string) (*entity.Genre, error)
	GetBySlugs(slugs []string) ([]*entity.Genre, error)
	List(search string, limit, offset int) ([]*entity.Genre, error)
	DeleteBySlug(slug string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *entity.Category) error {
	categoryModel := ToCategoryModel(category)
	if err := r.db.Create(categoryModel).Error; err != nil {
		return err
	}
	*category = *ToCategoryEntity(categoryModel)
	return nil
}

func (r *categoryRepository) GetBySlug(slug string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	if err := r.db.Where("slug = ?", slug).First(&categoryModel).Error; err != nil {
		return nil, err
	}
	return ToCategoryEntity(&categoryModel), nil
}

func (r *categoryRepository) List(search string, limit, offset int) ([]*entity.Category, error) {
	query := r.db.Model(&model.CategoryModel{}).Order("name")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var categoryModels []model.CategoryModel
	if err := query.Limit(limit).Offset(offset).Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = ToCategoryEntity(&categoryModels[i])
	}
	return categories, nil
}

func (r *categoryRepository) DeleteBySlug(slug string) error {
	result := r.db.Where("slug = ?", slug).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(genre *entity.Genre) error {
	genreModel := ToGenreModel(genre)
	if err := r.db.Create(genreModel).Error; err != nil {
		return err
	}
	*genre = *ToGenreEntity(genreModel)
	return nil
}

func (r *genreRepository) GetBySlug(slug string) (*entity.Genre, error) {
	var genreModel model.GenreModel
	if err := r.db.Where("slug = ?", slug).First(&genreModel).Error; err != nil {
		return nil, err
	}
	return ToGenreEntity(&genreModel), nil
}

func (r *genreRepository) GetBySlugs(slugs []string) ([]*entity.Genre, error) {
	var genreModels []model.GenreModel
	if err := r.db.Where("slug IN ?", slugs).Find(&genreModels).Error; err != nil {
		return nil, err
	}

	genres := make([]*entity.Genre, len(genreModels))
	for i := range genreModels {
		genres[i] = ToGenreEntity(&genreModels[i])
	}
	return genres, nil
}

func (r *genreRepository) List(search string, limit, offset int) ([]*entity.Genre, error) {
	query := r.db.Model(&model.GenreModel{}).Order("name")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var genreModels []model.GenreModel
	if err := query.Limit(limit).Offset(offset).Find(&genreModels).Error; err != nil {
		return nil, err
	}

	genres := make([]*entity.Genre, len(genreModels))
	for i := range genreModels {
		genres[i] = ToGenreEntity(&genreModels[i])
	}
	return genres, nil
}

func (r *genreRepository) DeleteBySlug(slug string) error {
	result := r.db.Where("slug = ?", slug).Delete(&model.GenreModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

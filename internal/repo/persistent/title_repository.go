package persistent

import (
	"database/sql"

	"reviewdb/internal/entity"
	"reviewdb/internal/model"

	"gorm.io/gorm"
)

// TitleFilter narrows a title listing; zero values mean "no filter".
type TitleFilter struct {
	CategorySlug string
	GenreSlug    string
	Name         string
	Year         int
}

type TitleRepository interface {
	Create(title *entity.Title) error
	GetByID(id int64) (*entity.Title, error)
	List(filter TitleFilter, limit, offset int) ([]*entity.Title, error)
	Update(title *entity.Title) error
	Delete(id int64) error
	AvgScore(titleID int64) (*float64, error)
	AvgScores(titleIDs []int64) (map[int64]float64, error)
}

type titleRepository struct {
	db *gorm.DB
}

func NewTitleRepository(db *gorm.DB) TitleRepository {
	return &titleRepository{db: db}
}

func toTitleModel(e *entity.Title) *model.TitleModel {
	m := &model.TitleModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Year:        e.Year,
	}
	if e.Category != nil {
		m.CategoryID = &e.Category.ID
	}
	for _, g := range e.Genres {
		m.Genres = append(m.Genres, *ToGenreModel(&g))
	}
	return m
}

func (r *titleRepository) Create(title *entity.Title) error {
	titleModel := toTitleModel(title)
	// The genres already exist; only the join rows should be written.
	if err := r.db.Omit("Genres.*", "Category").Create(titleModel).Error; err != nil {
		return err
	}
	title.ID = titleModel.ID
	return nil
}

func (r *titleRepository) GetByID(id int64) (*entity.Title, error) {
	var titleModel model.TitleModel
	err := r.db.Preload("Category").Preload("Genres").Where("id = ?", id).First(&titleModel).Error
	if err != nil {
		return nil, err
	}
	return ToTitleEntity(&titleModel), nil
}

func (r *titleRepository) List(filter TitleFilter, limit, offset int) ([]*entity.Title, error) {
	query := r.db.Model(&model.TitleModel{}).
		Preload("Category").
		Preload("Genres").
		Order("titles.name")

	if filter.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = titles.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.GenreSlug != "" {
		query = query.Joins("JOIN title_genres ON title_genres.title_model_id = titles.id").
			Joins("JOIN genres ON genres.id = title_genres.genre_model_id").
			Where("genres.slug = ?", filter.GenreSlug)
	}
	if filter.Name != "" {
		query = query.Where("titles.name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Year != 0 {
		query = query.Where("titles.year = ?", filter.Year)
	}

	var titleModels []model.TitleModel
	if err := query.Limit(limit).Offset(offset).Find(&titleModels).Error; err != nil {
		return nil, err
	}

	titles := make([]*entity.Title, len(titleModels))
	for i := range titleModels {
		titles[i] = ToTitleEntity(&titleModels[i])
	}
	return titles, nil
}

func (r *titleRepository) Update(title *entity.Title) error {
	titleModel := toTitleModel(title)

	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":        titleModel.Name,
			"description": titleModel.Description,
			"year":        titleModel.Year,
			"category_id": titleModel.CategoryID,
		}
		result := tx.Model(&model.TitleModel{}).Where("id = ?", titleModel.ID).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&model.TitleModel{ID: titleModel.ID}).
			Association("Genres").
			Replace(titleModel.Genres)
	})
}

func (r *titleRepository) Delete(id int64) error {
	result := r.db.Select("Genres").Delete(&model.TitleModel{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *titleRepository) AvgScore(titleID int64) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.Model(&model.ReviewModel{}).
		Where("title_id = ?", titleID).
		Select("AVG(score)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

func (r *titleRepository) AvgScores(titleIDs []int64) (map[int64]float64, error) {
	if len(titleIDs) == 0 {
		return map[int64]float64{}, nil
	}

	var rows []struct {
		TitleID int64
		Avg     float64
	}
	err := r.db.Model(&model.ReviewModel{}).
		Where("title_id IN ?", titleIDs).
		Select("title_id, AVG(score) AS avg").
		Group("title_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	scores := make(map[int64]float64, len(rows))
	for _, row := range rows {
		scores[row.TitleID] = row.Avg
	}
	return scores, nil
}

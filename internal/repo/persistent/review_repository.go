package persistent

import (
	"reviewdb/internal/entity"
	"reviewdb/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *entity.Review) error
	GetByID(titleID, id int64) (*entity.Review, error)
	ListByTitle(titleID int64, limit, offset int) ([]*entity.Review, error)
	Update(review *entity.Review) error
	Delete(titleID, id int64) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *entity.Review) error {
	reviewModel := &model.ReviewModel{
		TitleID:  review.TitleID,
		AuthorID: review.AuthorID,
		Text:     review.Text,
		Score:    review.Score,
	}
	// Uniqueness of (title, author) is enforced by the database so that
	// concurrent duplicate submissions cannot both succeed.
	if err := r.db.Create(reviewModel).Error; err != nil {
		return err
	}
	if err := r.db.Preload("Author").First(reviewModel, reviewModel.ID).Error; err != nil {
		return err
	}
	*review = *ToReviewEntity(reviewModel)
	return nil
}

func (r *reviewRepository) GetByID(titleID, id int64) (*entity.Review, error) {
	var reviewModel model.ReviewModel
	err := r.db.Preload("Author").
		Where("id = ? AND title_id = ?", id, titleID).
		First(&reviewModel).Error
	if err != nil {
		return nil, err
	}
	return ToReviewEntity(&reviewModel), nil
}

func (r *reviewRepository) ListByTitle(titleID int64, limit, offset int) ([]*entity.Review, error) {
	var reviewModels []model.ReviewModel
	err := r.db.Preload("Author").
		Where("title_id = ?", titleID).
		Order("pub_date DESC").
		Limit(limit).Offset(offset).
		Find(&reviewModels).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]*entity.Review, len(reviewModels))
	for i := range reviewModels {
		reviews[i] = ToReviewEntity(&reviewModels[i])
	}
	return reviews, nil
}

func (r *reviewRepository) Update(review *entity.Review) error {
	// Text and score only; author, title and pub_date are immutable.
	result := r.db.Model(&model.ReviewModel{}).
		Where("id = ? AND title_id = ?", review.ID, review.TitleID).
		Updates(map[string]interface{}{
			"text":  review.Text,
			"score": review.Score,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reviewRepository) Delete(titleID, id int64) error {
	result := r.db.Where("id = ? AND title_id = ?", id, titleID).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

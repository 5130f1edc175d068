package persistent

import (
	"reviewdb/internal/entity"
	"reviewdb/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(reviewID, id int64) (*entity.Comment, error)
	ListByReview(reviewID int64, limit, offset int) ([]*entity.Comment, error)
	Update(comment *entity.Comment) error
	Delete(reviewID, id int64) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := &model.CommentModel{
		ReviewID: comment.ReviewID,
		AuthorID: comment.AuthorID,
		Text:     comment.Text,
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	if err := r.db.Preload("Author").First(commentModel, commentModel.ID).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(reviewID, id int64) (*entity.Comment, error) {
	var commentModel model.CommentModel
	err := r.db.Preload("Author").
		Where("id = ? AND review_id = ?", id, reviewID).
		First(&commentModel).Error
	if err != nil {
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) ListByReview(reviewID int64, limit, offset int) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	err := r.db.Preload("Author").
		Where("review_id = ?", reviewID).
		Order("pub_date DESC").
		Limit(limit).Offset(offset).
		Find(&commentModels).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) Update(comment *entity.Comment) error {
	result := r.db.Model(&model.CommentModel{}).
		Where("id = ? AND review_id = ?", comment.ID, comment.ReviewID).
		Update("text", comment.Text)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) Delete(reviewID, id int64) error {
	result := r.db.Where("id = ? AND review_id = ?", id, reviewID).Delete(&model.CommentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

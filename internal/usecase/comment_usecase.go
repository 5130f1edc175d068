package usecase

import (
	"errors"
	"fmt"

	"reviewdb/internal/entity"
	"reviewdb/internal/repo/persistent"
	"reviewdb/pkg/logger"

	"gorm.io/gorm"
)

type CommentInput struct {
	Text string
}

type CommentPatch struct {
	Text *string
}

type CommentUseCase interface {
	ListByReview(titleID, reviewID int64, limit, offset int) ([]*entity.Comment, error)
	Get(titleID, reviewID, commentID int64) (*entity.Comment, error)
	Create(actor Actor, titleID, reviewID int64, input CommentInput) (*entity.Comment, error)
	Update(actor Actor, titleID, reviewID, commentID int64, patch CommentPatch) (*entity.Comment, error)
	Delete(actor Actor, titleID, reviewID, commentID int64) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	reviewRepo  persistent.ReviewRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	reviewRepo persistent.ReviewRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
		logger:      logger,
	}
}

// requireReview checks that the review exists AND belongs to the stated
// title; a mismatched pair is a 404, never a silent success.
func (uc *commentUseCase) requireReview(titleID, reviewID int64) error {
	if _, err := uc.reviewRepo.GetByID(titleID, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (uc *commentUseCase) ListByReview(titleID, reviewID int64, limit, offset int) ([]*entity.Comment, error) {
	if err := uc.requireReview(titleID, reviewID); err != nil {
		return nil, err
	}
	return uc.commentRepo.ListByReview(reviewID, limit, offset)
}

func (uc *commentUseCase) Get(titleID, reviewID, commentID int64) (*entity.Comment, error) {
	if err := uc.requireReview(titleID, reviewID); err != nil {
		return nil, err
	}

	comment, err := uc.commentRepo.GetByID(reviewID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (uc *commentUseCase) Create(actor Actor, titleID, reviewID int64, input CommentInput) (*entity.Comment, error) {
	if err := uc.requireReview(titleID, reviewID); err != nil {
		return nil, err
	}

	if input.Text == "" {
		return nil, newFieldError("text", "must not be empty")
	}

	comment := &entity.Comment{
		ReviewID: reviewID,
		AuthorID: actor.ID,
		Text:     input.Text,
	}
	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment: %v", err)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

func (uc *commentUseCase) Update(actor Actor, titleID, reviewID, commentID int64, patch CommentPatch) (*entity.Comment, error) {
	comment, err := uc.Get(titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if !actor.CanEdit(comment.AuthorID) {
		return nil, &ForbiddenError{Message: "moderator rights required to edit another user's comment"}
	}

	if patch.Text != nil {
		if *patch.Text == "" {
			return nil, newFieldError("text", "must not be empty")
		}
		comment.Text = *patch.Text
	}

	if err := uc.commentRepo.Update(comment); err != nil {
		uc.logger.Error("Failed to update comment %d: %v", commentID, err)
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (uc *commentUseCase) Delete(actor Actor, titleID, reviewID, commentID int64) error {
	comment, err := uc.Get(titleID, reviewID, commentID)
	if err != nil {
		return err
	}
	if !actor.CanEdit(comment.AuthorID) {
		return &ForbiddenError{Message: "moderator rights required to delete another user's comment"}
	}

	if err := uc.commentRepo.Delete(reviewID, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

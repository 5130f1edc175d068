package usecase

import (
	"context"
	"errors"
	"fmt"

	"reviewdb/internal/entity"
	"reviewdb/internal/repo/persistent"
	"reviewdb/pkg/logger"

	"gorm.io/gorm"
)

type ReviewInput struct {
	Text  string
	Score int
}

type ReviewPatch struct {
	Text  *string
	Score *int
}

type ReviewUseCase interface {
	ListByTitle(titleID int64, limit, offset int) ([]*entity.Review, error)
	Get(titleID, reviewID int64) (*entity.Review, error)
	Create(actor Actor, titleID int64, input ReviewInput) (*entity.Review, error)
	Update(actor Actor, titleID, reviewID int64, patch ReviewPatch) (*entity.Review, error)
	Delete(actor Actor, titleID, reviewID int64) error
}

type reviewUseCase struct {
	reviewRepo persistent.ReviewRepository
	titleRepo  persistent.TitleRepository
	ratings    *RatingCache
	logger     *logger.Logger
}

func NewReviewUseCase(
	reviewRepo persistent.ReviewRepository,
	titleRepo persistent.TitleRepository,
	ratings *RatingCache,
	logger *logger.Logger,
) ReviewUseCase {
	return &reviewUseCase{
		reviewRepo: reviewRepo,
		titleRepo:  titleRepo,
		ratings:    ratings,
		logger:     logger,
	}
}

func (uc *reviewUseCase) requireTitle(titleID int64) error {
	if _, err := uc.titleRepo.GetByID(titleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (uc *reviewUseCase) ListByTitle(titleID int64, limit, offset int) ([]*entity.Review, error) {
	if err := uc.requireTitle(titleID); err != nil {
		return nil, err
	}
	return uc.reviewRepo.ListByTitle(titleID, limit, offset)
}

func (uc *reviewUseCase) Get(titleID, reviewID int64) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(titleID, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return review, nil
}

// Create sets the author and title from the request context; anything the
// client sends for those fields is ignored by construction.
func (uc *reviewUseCase) Create(actor Actor, titleID int64, input ReviewInput) (*entity.Review, error) {
	if err := uc.requireTitle(titleID); err != nil {
		return nil, err
	}

	v := &ValidationError{}
	if input.Text == "" {
		v.Add("text", "must not be empty")
	}
	validateScore(v, input.Score)
	if v.HasErrors() {
		return nil, v
	}

	review := &entity.Review{
		TitleID:  titleID,
		AuthorID: actor.ID,
		Text:     input.Text,
		Score:    input.Score,
	}
	if err := uc.reviewRepo.Create(review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newFieldError("title", "you have already reviewed this title")
		}
		uc.logger.Error("Failed to create review: %v", err)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	uc.ratings.Invalidate(context.Background(), titleID)
	return review, nil
}

func (uc *reviewUseCase) Update(actor Actor, titleID, reviewID int64, patch ReviewPatch) (*entity.Review, error) {
	review, err := uc.Get(titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if !actor.CanEdit(review.AuthorID) {
		return nil, &ForbiddenError{Message: "moderator rights required to edit another user's review"}
	}

	v := &ValidationError{}
	if patch.Text != nil {
		if *patch.Text == "" {
			v.Add("text", "must not be empty")
		} else {
			review.Text = *patch.Text
		}
	}
	if patch.Score != nil {
		validateScore(v, *patch.Score)
		review.Score = *patch.Score
	}
	if v.HasErrors() {
		return nil, v
	}

	if err := uc.reviewRepo.Update(review); err != nil {
		uc.logger.Error("Failed to update review %d: %v", reviewID, err)
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	uc.ratings.Invalidate(context.Background(), titleID)
	return review, nil
}

func (uc *reviewUseCase) Delete(actor Actor, titleID, reviewID int64) error {
	review, err := uc.Get(titleID, reviewID)
	if err != nil {
		return err
	}
	if !actor.CanEdit(review.AuthorID) {
		return &ForbiddenError{Message: "moderator rights required to delete another user's review"}
	}

	if err := uc.reviewRepo.Delete(titleID, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	uc.ratings.Invalidate(context.Background(), titleID)
	return nil
}

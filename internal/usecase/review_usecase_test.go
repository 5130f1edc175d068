package usecase

import (
	"testing"

	"reviewdb/internal/entity"
	"reviewdb/internal/repo/persistent"
	"reviewdb/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockTitleRepository is a mock implementation of persistent.TitleRepository
type MockTitleRepository struct {
	mock.Mock
}

func (m *MockTitleRepository) Create(title *entity.Title) error {
	args := m.Called(title)
	return args.Error(0)
}

func (m *MockTitleRepository) GetByID(id int64) (*entity.Title, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Title), args.Error(1)
}

func (m *MockTitleRepository) List(filter persistent.TitleFilter, limit, offset int) ([]*entity.Title, error) {
	args := m.Called(filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Title), args.Error(1)
}

func (m *MockTitleRepository) Update(title *entity.Title) error {
	args := m.Called(title)
	return args.Error(0)
}

func (m *MockTitleRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTitleRepository) AvgScore(titleID int64) (*float64, error) {
	args := m.Called(titleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

func (m *MockTitleRepository) AvgScores(titleIDs []int64) (map[int64]float64, error) {
	args := m.Called(titleIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]float64), args.Error(1)
}

var _ persistent.TitleRepository = (*MockTitleRepository)(nil)

// MockReviewRepository is a mock implementation of persistent.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *entity.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(titleID, id int64) (*entity.Review, error) {
	args := m.Called(titleID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByTitle(titleID int64, limit, offset int) ([]*entity.Review, error) {
	args := m.Called(titleID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(review *entity.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(titleID, id int64) error {
	args := m.Called(titleID, id)
	return args.Error(0)
}

var _ persistent.ReviewRepository = (*MockReviewRepository)(nil)

func newTestReviewUseCase(reviewRepo persistent.ReviewRepository, titleRepo persistent.TitleRepository) ReviewUseCase {
	return NewReviewUseCase(reviewRepo, titleRepo, NewRatingCache(nil), logger.New())
}

func TestReviewCreate_Success(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockTitles := new(MockTitleRepository)
	uc := newTestReviewUseCase(mockReviews, mockTitles)

	mockTitles.On("GetByID", int64(5)).Return(&entity.Title{ID: 5, Name: "Dune"}, nil)
	mockReviews.On("Create", mock.AnythingOfType("*entity.Review")).Return(nil)

	actor := Actor{ID: "user-123", Role: entity.RoleUser}
	review, err := uc.Create(actor, 5, ReviewInput{Text: "Great", Score: 9})

	assert.NoError(t, err)
	assert.Equal(t, "user-123", review.AuthorID)
	assert.Equal(t, int64(5), review.TitleID)

	mockReviews.AssertExpectations(t)
}

func TestReviewCreate_DuplicateIsFieldError(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockTitles := new(MockTitleRepository)
	uc := newTestReviewUseCase(mockReviews, mockTitles)

	mockTitles.On("GetByID", int64(5)).Return(&entity.Title{ID: 5, Name: "Dune"}, nil)
	mockReviews.On("Create", mock.AnythingOfType("*entity.Review")).Return(gorm.ErrDuplicatedKey)

	actor := Actor{ID: "user-123", Role: entity.RoleUser}
	_, err := uc.Create(actor, 5, ReviewInput{Text: "Again", Score: 7})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "title")

	mockReviews.AssertExpectations(t)
}

func TestReviewCreate_MissingTitle(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockTitles := new(MockTitleRepository)
	uc := newTestReviewUseCase(mockReviews, mockTitles)

	mockTitles.On("GetByID", int64(999)).Return(nil, gorm.ErrRecordNotFound)

	actor := Actor{ID: "user-123", Role: entity.RoleUser}
	_, err := uc.Create(actor, 999, ReviewInput{Text: "Great", Score: 9})

	assert.ErrorIs(t, err, ErrNotFound)
	mockReviews.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewCreate_ScoreOutOfRange(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockTitles := new(MockTitleRepository)
	uc := newTestReviewUseCase(mockReviews, mockTitles)

	mockTitles.On("GetByID", int64(5)).Return(&entity.Title{ID: 5, Name: "Dune"}, nil)

	actor := Actor{ID: "user-123", Role: entity.RoleUser}
	_, err := uc.Create(actor, 5, ReviewInput{Text: "Great", Score: 11})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "score")

	mockReviews.AssertNotCalled(t, "Create", mock.Anything)
}

func TestReviewUpdate_OtherUserForbidden(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockTitles := new(MockTitleRepository)
	uc := newTestReviewUseCase(mockReviews, mockTitles)

	mockReviews.On("GetByID", int64(5), int64(2)).Return(&entity.Review{
		ID:       2,
		TitleID:  5,
		AuthorID: "owner-1",
		Text:     "Original",
		Score:    8,
	}, nil)

	actor := Actor{ID: "other-user", Role: entity.RoleUser}
	text := "Edited"
	_, err := uc.Update(actor, 5, 2, ReviewPatch{Text: &text})

	var forbiddenErr *ForbiddenError
	assert.ErrorAs(t, err, &forbiddenErr)
	mockReviews.AssertNotCalled(t, "Update", mock.Anything)
}

func TestReviewDelete_ModeratorAllowed(t *testing.T) {
	mockReviews := new(MockReviewRepository)
	mockTitles := new(MockTitleRepository)
	uc := newTestReviewUseCase(mockReviews, mockTitles)

	mockReviews.On("GetByID", int64(5), int64(2)).Return(&entity.Review{
		ID:       2,
		TitleID:  5,
		AuthorID: "owner-1",
	}, nil)
	mockReviews.On("Delete", int64(5), int64(2)).Return(nil)

	actor := Actor{ID: "mod-1", Role: entity.RoleModerator}
	err := uc.Delete(actor, 5, 2)

	assert.NoError(t, err)
	mockReviews.AssertExpectations(t)
}

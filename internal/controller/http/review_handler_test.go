package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reviewdb/internal/entity"
	"reviewdb/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReviewUseCase is a mock implementation of ReviewUseCase
type MockReviewUseCase struct {
	mock.Mock
}

func (m *MockReviewUseCase) ListByTitle(titleID int64, limit, offset int) ([]*entity.Review, error) {
	args := m.Called(titleID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) Get(titleID, reviewID int64) (*entity.Review, error) {
	args := m.Called(titleID, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) Create(actor usecase.Actor, titleID int64, input usecase.ReviewInput) (*entity.Review, error) {
	args := m.Called(actor, titleID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) Update(actor usecase.Actor, titleID, reviewID int64, patch usecase.ReviewPatch) (*entity.Review, error) {
	args := m.Called(actor, titleID, reviewID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) Delete(actor usecase.Actor, titleID, reviewID int64) error {
	args := m.Called(actor, titleID, reviewID)
	return args.Error(0)
}

var _ usecase.ReviewUseCase = (*MockReviewUseCase)(nil)

func authedReviewRoute(handler func(*gin.Context), userID string, role entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", string(role))
		handler(c)
	}
}

func TestCreateReview_Success(t *testing.T) {
	mockUseCase := new(MockReviewUseCase)
	handler := NewReviewHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/titles/:title_id/reviews", authedReviewRoute(handler.Create, "user-123", entity.RoleUser))

	actor := usecase.Actor{ID: "user-123", Role: entity.RoleUser}
	input := usecase.ReviewInput{Text: "Great", Score: 9}
	mockUseCase.On("Create", actor, int64(5), input).Return(&entity.Review{
		ID:      1,
		Author:  "reader",
		Text:    "Great",
		Score:   9,
		PubDate: time.Now(),
	}, nil)

	body := `{"text":"Great","score":9}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/titles/5/reviews", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "reader", response["author"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateReview_Duplicate(t *testing.T) {
	mockUseCase := new(MockReviewUseCase)
	handler := NewReviewHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/titles/:title_id/reviews", authedReviewRoute(handler.Create, "user-123", entity.RoleUser))

	validationErr := &usecase.ValidationError{Fields: map[string][]string{
		"title": {"you have already reviewed this title"},
	}}
	mockUseCase.On("Create", mock.Anything, int64(5), mock.Anything).Return(nil, validationErr)

	body := `{"text":"Again","score":7}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/titles/5/reviews", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCreateReview_TitleNotFound(t *testing.T) {
	mockUseCase := new(MockReviewUseCase)
	handler := NewReviewHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/titles/:title_id/reviews", authedReviewRoute(handler.Create, "user-123", entity.RoleUser))

	mockUseCase.On("Create", mock.Anything, int64(999), mock.Anything).Return(nil, usecase.ErrNotFound)

	body := `{"text":"Great","score":9}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/titles/999/reviews", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPatchReview_Forbidden(t *testing.T) {
	mockUseCase := new(MockReviewUseCase)
	handler := NewReviewHandler(mockUseCase)

	router := setupTestRouter()
	router.PATCH("/titles/:title_id/reviews/:review_id", authedReviewRoute(handler.Patch, "other-user", entity.RoleUser))

	forbiddenErr := &usecase.ForbiddenError{Message: "you do not have permission to modify this review"}
	mockUseCase.On("Update", mock.Anything, int64(5), int64(2), mock.Anything).Return(nil, forbiddenErr)

	body := `{"text":"Edited"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/titles/5/reviews/2", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteReview_Moderator(t *testing.T) {
	mockUseCase := new(MockReviewUseCase)
	handler := NewReviewHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/titles/:title_id/reviews/:review_id", authedReviewRoute(handler.Delete, "mod-1", entity.RoleModerator))

	actor := usecase.Actor{ID: "mod-1", Role: entity.RoleModerator}
	mockUseCase.On("Delete", actor, int64(5), int64(2)).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/titles/5/reviews/2", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListReviews_Success(t *testing.T) {
	mockUseCase := new(MockReviewUseCase)
	handler := NewReviewHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/titles/:title_id/reviews", handler.List)

	mockReviews := []*entity.Review{
		{ID: 2, Author: "beta", Text: "Later", Score: 7, PubDate: time.Now()},
		{ID: 1, Author: "alpha", Text: "Earlier", Score: 9, PubDate: time.Now().Add(-time.Hour)},
	}
	mockUseCase.On("ListByTitle", int64(5), 20, 0).Return(mockReviews, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/titles/5/reviews", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 2, len(response))

	mockUseCase.AssertExpectations(t)
}

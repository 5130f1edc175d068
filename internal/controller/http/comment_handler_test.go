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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCommentUseCase is a mock implementation of CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) ListByReview(titleID, reviewID int64, limit, offset int) ([]*entity.Comment, error) {
	args := m.Called(titleID, reviewID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Get(titleID, reviewID, commentID int64) (*entity.Comment, error) {
	args := m.Called(titleID, reviewID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Create(actor usecase.Actor, titleID, reviewID int64, input usecase.CommentInput) (*entity.Comment, error) {
	args := m.Called(actor, titleID, reviewID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Update(actor usecase.Actor, titleID, reviewID, commentID int64, patch usecase.CommentPatch) (*entity.Comment, error) {
	args := m.Called(actor, titleID, reviewID, commentID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) Delete(actor usecase.Actor, titleID, reviewID, commentID int64) error {
	args := m.Called(actor, titleID, reviewID, commentID)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

func TestCreateComment_Success(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/titles/:title_id/reviews/:review_id/comments",
		authedReviewRoute(handler.Create, "user-123", entity.RoleUser))

	actor := usecase.Actor{ID: "user-123", Role: entity.RoleUser}
	input := usecase.CommentInput{Text: "Agreed"}
	mockUseCase.On("Create", actor, int64(5), int64(2), input).Return(&entity.Comment{
		ID:      1,
		Author:  "reader",
		Text:    "Agreed",
		PubDate: time.Now(),
	}, nil)

	body := `{"text":"Agreed"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/titles/5/reviews/2/comments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Agreed", response["text"])

	mockUseCase.AssertExpectations(t)
}

func TestListComments_ReviewMismatch(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/titles/:title_id/reviews/:review_id/comments", handler.List)

	// review 2 does not belong to title 9
	mockUseCase.On("ListByReview", int64(9), int64(2), 20, 0).Return(nil, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/titles/9/reviews/2/comments", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteComment_Forbidden(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/titles/:title_id/reviews/:review_id/comments/:comment_id",
		authedReviewRoute(handler.Delete, "other-user", entity.RoleUser))

	forbiddenErr := &usecase.ForbiddenError{Message: "you do not have permission to modify this comment"}
	mockUseCase.On("Delete", mock.Anything, int64(5), int64(2), int64(1)).Return(forbiddenErr)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/titles/5/reviews/2/comments/1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPatchComment_Owner(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase)

	router := setupTestRouter()
	router.PATCH("/titles/:title_id/reviews/:review_id/comments/:comment_id",
		authedReviewRoute(handler.Patch, "user-123", entity.RoleUser))

	text := "Edited"
	actor := usecase.Actor{ID: "user-123", Role: entity.RoleUser}
	mockUseCase.On("Update", actor, int64(5), int64(2), int64(1), usecase.CommentPatch{Text: &text}).Return(&entity.Comment{
		ID:      1,
		Author:  "reader",
		Text:    "Edited",
		PubDate: time.Now(),
	}, nil)

	body := `{"text":"Edited"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/titles/5/reviews/2/comments/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

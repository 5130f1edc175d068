package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reviewdb/internal/entity"
	"reviewdb/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTaxonomyUseCase is a mock implementation of TaxonomyUseCase
type MockTaxonomyUseCase struct {
	mock.Mock
}

func (m *MockTaxonomyUseCase) ListCategories(search string, limit, offset int) ([]*entity.Category, error) {
	args := m.Called(search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockTaxonomyUseCase) GetCategory(slug string) (*entity.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockTaxonomyUseCase) CreateCategory(input usecase.TaxonomyInput) (*entity.Category, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockTaxonomyUseCase) DeleteCategory(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

func (m *MockTaxonomyUseCase) ListGenres(search string, limit, offset int) ([]*entity.Genre, error) {
	args := m.Called(search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Genre), args.Error(1)
}

func (m *MockTaxonomyUseCase) GetGenre(slug string) (*entity.Genre, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Genre), args.Error(1)
}

func (m *MockTaxonomyUseCase) CreateGenre(input usecase.TaxonomyInput) (*entity.Genre, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Genre), args.Error(1)
}

func (m *MockTaxonomyUseCase) DeleteGenre(slug string) error {
	args := m.Called(slug)
	return args.Error(0)
}

var _ usecase.TaxonomyUseCase = (*MockTaxonomyUseCase)(nil)

func TestListCategories_Success(t *testing.T) {
	mockUseCase := new(MockTaxonomyUseCase)
	handler := NewTaxonomyHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/categories", handler.ListCategories)

	mockCategories := []*entity.Category{
		{Name: "Books", Slug: "books"},
		{Name: "Movies", Slug: "movies"},
	}
	mockUseCase.On("ListCategories", "", 20, 0).Return(mockCategories, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/categories", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 2, len(response))
	assert.Equal(t, "books", response[0]["slug"])
	assert.NotContains(t, response[0], "id")

	mockUseCase.AssertExpectations(t)
}

func TestCreateCategory_DuplicateSlug(t *testing.T) {
	mockUseCase := new(MockTaxonomyUseCase)
	handler := NewTaxonomyHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/categories", handler.CreateCategory)

	validationErr := &usecase.ValidationError{Fields: map[string][]string{
		"slug": {"category with this slug already exists"},
	}}
	input := usecase.TaxonomyInput{Name: "Books", Slug: "books"}
	mockUseCase.On("CreateCategory", input).Return(nil, validationErr)

	body := `{"name":"Books","slug":"books"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/categories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string][]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(t, response, "slug")

	mockUseCase.AssertExpectations(t)
}

func TestGetGenre_Success(t *testing.T) {
	mockUseCase := new(MockTaxonomyUseCase)
	handler := NewTaxonomyHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/genres/:slug", handler.GetGenre)

	mockUseCase.On("GetGenre", "drama").Return(&entity.Genre{Name: "Drama", Slug: "drama"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/genres/drama", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Drama", response["name"])

	mockUseCase.AssertExpectations(t)
}

func TestDeleteGenre_NotFound(t *testing.T) {
	mockUseCase := new(MockTaxonomyUseCase)
	handler := NewTaxonomyHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/genres/:slug", handler.DeleteGenre)

	mockUseCase.On("DeleteGenre", "ghost").Return(usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/genres/ghost", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteCategory_Success(t *testing.T) {
	mockUseCase := new(MockTaxonomyUseCase)
	handler := NewTaxonomyHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/categories/:slug", handler.DeleteCategory)

	mockUseCase.On("DeleteCategory", "books").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/categories/books", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockUseCase.AssertExpectations(t)
}

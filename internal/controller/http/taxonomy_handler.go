package http

import (
	"net/http"

	"reviewdb/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TaxonomyHandler serves both categories and genres; the two resources share
// a shape and differ only in the backing table.
type TaxonomyHandler struct {
	taxonomyUseCase usecase.TaxonomyUseCase
}

func NewTaxonomyHandler(taxonomyUseCase usecase.TaxonomyUseCase) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyUseCase: taxonomyUseCase}
}

type TaxonomyRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ListCategories godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        search query string false "Filter by name substring"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Page offset"
// @Success      200  {array}  entity.Category
// @Router       /categories [get]
func (h *TaxonomyHandler) ListCategories(c *gin.Context) {
	limit, offset := parsePagination(c)

	categories, err := h.taxonomyUseCase.ListCategories(c.Query("search"), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary      Get a category by slug
// @Tags         categories
// @Produce      json
// @Param        slug path string true "Category slug"
// @Success      200  {object}  entity.Category
// @Failure      404  {object}  map[string]string
// @Router       /categories/{slug} [get]
func (h *TaxonomyHandler) GetCategory(c *gin.Context) {
	category, err := h.taxonomyUseCase.GetCategory(c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory godoc
// @Summary      Create a category (admin only)
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TaxonomyRequest true "Category data"
// @Success      201  {object}  entity.Category
// @Failure      400  {object}  map[string][]string
// @Router       /categories [post]
func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req TaxonomyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.taxonomyUseCase.CreateCategory(usecase.TaxonomyInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// DeleteCategory godoc
// @Summary      Delete a category by slug (admin only)
// @Description  Titles in the category are kept; their category becomes null
// @Tags         categories
// @Security     BearerAuth
// @Param        slug path string true "Category slug"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /categories/{slug} [delete]
func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	if err := h.taxonomyUseCase.DeleteCategory(c.Param("slug")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListGenres godoc
// @Summary      List genres
// @Tags         genres
// @Produce      json
// @Param        search query string false "Filter by name substring"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Page offset"
// @Success      200  {array}  entity.Genre
// @Router       /genres [get]
func (h *TaxonomyHandler) ListGenres(c *gin.Context) {
	limit, offset := parsePagination(c)

	genres, err := h.taxonomyUseCase.ListGenres(c.Query("search"), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

// GetGenre godoc
// @Summary      Get a genre by slug
// @Tags         genres
// @Produce      json
// @Param        slug path string true "Genre slug"
// @Success      200  {object}  entity.Genre
// @Failure      404  {object}  map[string]string
// @Router       /genres/{slug} [get]
func (h *TaxonomyHandler) GetGenre(c *gin.Context) {
	genre, err := h.taxonomyUseCase.GetGenre(c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

// CreateGenre godoc
// @Summary      Create a genre (admin only)
// @Tags         genres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TaxonomyRequest true "Genre data"
// @Success      201  {object}  entity.Genre
// @Failure      400  {object}  map[string][]string
// @Router       /genres [post]
func (h *TaxonomyHandler) CreateGenre(c *gin.Context) {
	var req TaxonomyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	genre, err := h.taxonomyUseCase.CreateGenre(usecase.TaxonomyInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, genre)
}

// DeleteGenre godoc
// @Summary      Delete a genre by slug (admin only)
// @Tags         genres
// @Security     BearerAuth
// @Param        slug path string true "Genre slug"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /genres/{slug} [delete]
func (h *TaxonomyHandler) DeleteGenre(c *gin.Context) {
	if err := h.taxonomyUseCase.DeleteGenre(c.Param("slug")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

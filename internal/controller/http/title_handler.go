package http

import (
	"net/http"
	"strconv"

	"reviewdb/internal/repo/persistent"
	"reviewdb/internal/usecase"

	"github.com/gin-gonic/gin"
)

type TitleHandler struct {
	titleUseCase usecase.TitleUseCase
}

func NewTitleHandler(titleUseCase usecase.TitleUseCase) *TitleHandler {
	return &TitleHandler{titleUseCase: titleUseCase}
}

type CreateTitleRequest struct {
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Genre       []string `json:"genre"`
}

type PatchTitleRequest struct {
	Name        *string   `json:"name"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Genre       *[]string `json:"genre"`
}

// List godoc
// @Summary      List titles
// @Description  Read shape includes nested category/genre objects and the computed rating
// @Tags         titles
// @Produce      json
// @Param        category query string false "Filter by category slug"
// @Param        genre    query string false "Filter by genre slug"
// @Param        name     query string false "Filter by name substring"
// @Param        year     query int    false "Filter by year"
// @Param        limit    query int    false "Page size"
// @Param        offset   query int    false "Page offset"
// @Success      200  {array}  entity.Title
// @Router       /titles [get]
func (h *TitleHandler) List(c *gin.Context) {
	limit, offset := parsePagination(c)

	filter := persistent.TitleFilter{
		CategorySlug: c.Query("category"),
		GenreSlug:    c.Query("genre"),
		Name:         c.Query("name"),
	}
	if raw := c.Query("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			filter.Year = year
		}
	}

	titles, err := h.titleUseCase.List(filter, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, titles)
}

// Get godoc
// @Summary      Get a title
// @Tags         titles
// @Produce      json
// @Param        title_id path int true "Title ID"
// @Success      200  {object}  entity.Title
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id} [get]
func (h *TitleHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "title_id")
	if !ok {
		return
	}

	title, err := h.titleUseCase.Get(id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, title)
}

// Create godoc
// @Summary      Create a title (admin only)
// @Description  Write shape references category and genres by slug
// @Tags         titles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateTitleRequest true "Title data"
// @Success      201  {object}  entity.Title
// @Failure      400  {object}  map[string][]string
// @Router       /titles [post]
func (h *TitleHandler) Create(c *gin.Context) {
	var req CreateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, err := h.titleUseCase.Create(usecase.TitleInput{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		Category:    req.Category,
		Genres:      req.Genre,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, title)
}

// Patch godoc
// @Summary      Update a title (admin only)
// @Tags         titles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        title_id path int true "Title ID"
// @Param        request body PatchTitleRequest true "Fields to update"
// @Success      200  {object}  entity.Title
// @Failure      400  {object}  map[string][]string
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id} [patch]
func (h *TitleHandler) Patch(c *gin.Context) {
	id, ok := parseIDParam(c, "title_id")
	if !ok {
		return
	}

	var req PatchTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title, err := h.titleUseCase.Update(id, usecase.TitlePatch{
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		Category:    req.Category,
		Genres:      req.Genre,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, title)
}

// Delete godoc
// @Summary      Delete a title (admin only)
// @Tags         titles
// @Security     BearerAuth
// @Param        title_id path int true "Title ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id} [delete]
func (h *TitleHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "title_id")
	if !ok {
		return
	}

	if err := h.titleUseCase.Delete(id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

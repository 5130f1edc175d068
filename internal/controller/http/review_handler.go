package http

import (
	"net/http"

	"reviewdb/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{reviewUseCase: reviewUseCase}
}

type CreateReviewRequest struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

type PatchReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

// List godoc
// @Summary      List reviews for a title
// @Tags         reviews
// @Produce      json
// @Param        title_id path int true "Title ID"
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {array}  entity.Review
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id}/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	titleID, ok := parseIDParam(c, "title_id")
	if !ok {
		return
	}
	limit, offset := parsePagination(c)

	reviews, err := h.reviewUseCase.ListByTitle(titleID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Get godoc
// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        title_id  path int true "Title ID"
// @Param        review_id path int true "Review ID"
// @Success      200  {object}  entity.Review
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id}/reviews/{review_id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	titleID, ok := parseIDParam(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}

	review, err := h.reviewUseCase.Get(titleID, reviewID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// Create godoc
// @Summary      Review a title
// @Description  Author and title come from the token and path; one review per user per title
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        title_id path int true "Title ID"
// @Param        request body CreateReviewRequest true "Review data"
// @Success      201  {object}  entity.Review
// @Failure      400  {object}  map[string][]string
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	titleID, ok := parseIDParam(c, "title_id")
	if !ok {
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewUseCase.Create(currentActor(c), titleID, usecase.ReviewInput{
		Text:  req.Text,
		Score: req.Score,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// Patch godoc
// @Summary      Update a review (owner or moderator)
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        title_id  path int true "Title ID"
// @Param        review_id path int true "Review ID"
// @Param        request body PatchReviewRequest true "Fields to update"
// @Success      200  {object}  entity.Review
// @Failure      400  {object}  map[string][]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id}/reviews/{review_id} [patch]
func (h *ReviewHandler) Patch(c *gin.Context) {
	titleID, ok := parseIDParam(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}

	var req PatchReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewUseCase.Update(currentActor(c), titleID, reviewID, usecase.ReviewPatch{
		Text:  req.Text,
		Score: req.Score,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// Delete godoc
// @Summary      Delete a review (owner or moderator)
// @Tags         reviews
// @Security     BearerAuth
// @Param        title_id  path int true "Title ID"
// @Param        review_id path int true "Review ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id}/reviews/{review_id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	titleID, ok := parseIDParam(c, "title_id")
	if !ok {
		return
	}
	reviewID, ok := parseIDParam(c, "review_id")
	if !ok {
		return
	}

	if err := h.reviewUseCase.Delete(currentActor(c), titleID, reviewID); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

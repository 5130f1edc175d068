package http

import (
	"net/http"

	"reviewdb/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase}
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type PatchCommentRequest struct {
	Text *string `json:"text"`
}

func commentScope(c *gin.Context) (titleID, reviewID int64, ok bool) {
	titleID, ok = parseIDParam(c, "title_id")
	if !ok {
		return 0, 0, false
	}
	reviewID, ok = parseIDParam(c, "review_id")
	if !ok {
		return 0, 0, false
	}
	return titleID, reviewID, true
}

// List godoc
// @Summary      List comments on a review
// @Tags         comments
// @Produce      json
// @Param        title_id  path int true "Title ID"
// @Param        review_id path int true "Review ID"
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {array}  entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id}/reviews/{review_id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	titleID, reviewID, ok := commentScope(c)
	if !ok {
		return
	}
	limit, offset := parsePagination(c)

	comments, err := h.commentUseCase.ListByReview(titleID, reviewID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Get godoc
// @Summary      Get a comment
// @Tags         comments
// @Produce      json
// @Param        title_id   path int true "Title ID"
// @Param        review_id  path int true "Review ID"
// @Param        comment_id path int true "Comment ID"
// @Success      200  {object}  entity.Comment
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [get]
func (h *CommentHandler) Get(c *gin.Context) {
	titleID, reviewID, ok := commentScope(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	comment, err := h.commentUseCase.Get(titleID, reviewID, commentID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Create godoc
// @Summary      Comment on a review
// @Description  Author and review come from the token and path
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        title_id  path int true "Title ID"
// @Param        review_id path int true "Review ID"
// @Param        request body CreateCommentRequest true "Comment data"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string][]string
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id}/reviews/{review_id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	titleID, reviewID, ok := commentScope(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.Create(currentActor(c), titleID, reviewID, usecase.CommentInput{
		Text: req.Text,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Patch godoc
// @Summary      Update a comment (owner or moderator)
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        title_id   path int true "Title ID"
// @Param        review_id  path int true "Review ID"
// @Param        comment_id path int true "Comment ID"
// @Param        request body PatchCommentRequest true "Fields to update"
// @Success      200  {object}  entity.Comment
// @Failure      400  {object}  map[string][]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [patch]
func (h *CommentHandler) Patch(c *gin.Context) {
	titleID, reviewID, ok := commentScope(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	var req PatchCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.Update(currentActor(c), titleID, reviewID, commentID, usecase.CommentPatch{
		Text: req.Text,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete godoc
// @Summary      Delete a comment (owner or moderator)
// @Tags         comments
// @Security     BearerAuth
// @Param        title_id   path int true "Title ID"
// @Param        review_id  path int true "Review ID"
// @Param        comment_id path int true "Comment ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /titles/{title_id}/reviews/{review_id}/comments/{comment_id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	titleID, reviewID, ok := commentScope(c)
	if !ok {
		return
	}
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	if err := h.commentUseCase.Delete(currentActor(c), titleID, reviewID, commentID); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

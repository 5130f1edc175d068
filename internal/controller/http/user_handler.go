package http

import (
	"net/http"

	"reviewdb/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
}

func NewUserHandler(userUseCase usecase.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

type CreateUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

type PatchUserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role"`
}

func (r PatchUserRequest) toPatch() usecase.UserPatch {
	return usecase.UserPatch{
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Bio:       r.Bio,
		Role:      r.Role,
	}
}

// List godoc
// @Summary      List users (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Filter by username substring"
// @Param        limit  query int    false "Page size"
// @Param        offset query int    false "Page offset"
// @Success      200  {array}  entity.User
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	limit, offset := parsePagination(c)

	users, err := h.userUseCase.List(c.Query("search"), limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create godoc
// @Summary      Create a user (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateUserRequest true "User data"
// @Success      201  {object}  entity.User
// @Failure      400  {object}  map[string][]string
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.Create(usecase.UserInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      req.Role,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Get godoc
// @Summary      Get a user by username (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{username} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userUseCase.GetByUsername(c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Patch godoc
// @Summary      Update a user by username (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Param        request body PatchUserRequest true "Fields to update"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string][]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{username} [patch]
func (h *UserHandler) Patch(c *gin.Context) {
	var req PatchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.UpdateByUsername(c.Param("username"), req.toPatch())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary      Delete a user by username (admin only)
// @Tags         users
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /users/{username} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userUseCase.Delete(c.Param("username")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary      Get the authenticated user's own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.User
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userUseCase.GetSelf(c.GetString("user_id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// PatchMe godoc
// @Summary      Update the authenticated user's own profile
// @Description  Partial update; the role field is ignored and kept at the stored value
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PatchUserRequest true "Fields to update"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string][]string
// @Router       /users/me [patch]
func (h *UserHandler) PatchMe(c *gin.Context) {
	var req PatchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUseCase.UpdateSelf(c.GetString("user_id"), req.toPatch())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

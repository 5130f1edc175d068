package http

import (
	"net/http"

	"reviewdb/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Signup godoc
// @Summary      Request a confirmation code
// @Description  Register a user (or re-request a code for an existing username/email pair); the code is emailed, never returned
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup data"
// @Success      200  {object}  SignupResponse
// @Failure      400  {object}  map[string][]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUseCase.Signup(req.Username, req.Email)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SignupResponse{
		Username: user.Username,
		Email:    user.Email,
	})
}

// Token godoc
// @Summary      Exchange a confirmation code for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body TokenRequest true "Token exchange data"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authUseCase.IssueToken(req.Username, req.ConfirmationCode)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

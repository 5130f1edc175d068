package http

import (
	"errors"
	"net/http"
	"strconv"

	"reviewdb/internal/entity"
	"reviewdb/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// handleError maps the usecase error taxonomy onto HTTP statuses:
// validation 400, forbidden 403, missing object 404, anything else 500.
func handleError(c *gin.Context, err error) {
	var validationErr *usecase.ValidationError
	var forbiddenErr *usecase.ForbiddenError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, validationErr.Fields)
	case errors.As(err, &forbiddenErr):
		c.JSON(http.StatusForbidden, gin.H{"error": forbiddenErr.Message})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, usecase.ErrInvalidConfirmationCode):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid confirmation code"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func currentActor(c *gin.Context) usecase.Actor {
	return usecase.Actor{
		ID:   c.GetString("user_id"),
		Role: entity.UserRole(c.GetString("user_role")),
	}
}

func parsePagination(c *gin.Context) (limit, offset int) {
	limit = defaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if raw := c.Query("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// parseIDParam treats a malformed id the same as a missing row.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return id, true
}

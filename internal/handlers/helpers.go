package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staffhub/internal/apperrors"
	"staffhub/internal/authz"
)

func getIntFromCtx(c *gin.Context, key string) (int, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, true
		}
	}
	return 0, false
}

func getUserAndRole(c *gin.Context) (int, authz.Role) {
	userID, _ := getIntFromCtx(c, "user_id")
	v, _ := c.Get("role")
	role, _ := v.(string)
	return userID, authz.Role(role)
}

func pagination(c *gin.Context) (limit, offset int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "100"))
	if err != nil || size < 1 {
		size = 100
	}
	return size, (page - 1) * size
}

// respondErr maps the error taxonomy onto HTTP statuses in one place.
// Store failures are logged with detail but reported generically.
func respondErr(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	var nfe *apperrors.NotFoundError
	var ce *apperrors.ConflictError
	var de *apperrors.DependencyError

	switch {
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	case errors.As(err, &nfe):
		c.JSON(http.StatusNotFound, gin.H{"error": nfe.Error()})
	case errors.As(err, &ce):
		c.JSON(http.StatusConflict, gin.H{"error": ce.Error()})
	case errors.As(err, &de):
		log.Printf("[store] %s failed: %v", de.Op, de.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	default:
		log.Printf("[http] unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

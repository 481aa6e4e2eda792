package types

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/internal/models"
)

// ContextUserKey is where the auth middleware stores the authenticated user.
const ContextUserKey = "auth_user"

// CurrentUser returns the authenticated user set by the auth middleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// ParseUintParam parses a numeric path parameter, writing a 400 envelope on
// failure.
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": "Invalid " + name + " parameter.",
		})
		return 0, false
	}
	return uint(value), true
}

// ParsePageQuery parses the optional ?page query, defaulting to the first
// page.
func ParsePageQuery(c *gin.Context) int {
	raw := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

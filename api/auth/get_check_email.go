package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// GetCheckEmail reports whether an email address is already registered.
// GET /api/v1/auth/check-email?email=
func GetCheckEmail(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Email query parameter is required."})
			return
		}

		taken, err := deps.UserService.CheckEmail(c.Request.Context(), email)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{"taken": taken})
	}
}

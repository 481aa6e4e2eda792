package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// GetSubscriptions returns the podcasts the authenticated listener is
// subscribed to.
// GET /api/v1/users/me/subscriptions
func GetSubscriptions(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := types.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Authentication required."})
			return
		}

		podcasts, err := deps.UserService.Subscriptions(c.Request.Context(), user.ID)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{"podcasts": podcasts})
	}
}

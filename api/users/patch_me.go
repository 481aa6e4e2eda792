package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
	"github.com/podshelf/catalog-api/internal/models"
)

// PatchMe edits the authenticated account. A new password is re-hashed
// before it is stored.
// PATCH /api/v1/users/me
func PatchMe(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := types.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Authentication required."})
			return
		}

		var patch models.UserPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body."})
			return
		}

		if err := deps.UserService.EditProfile(c.Request.Context(), user.ID, patch); err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{})
	}
}

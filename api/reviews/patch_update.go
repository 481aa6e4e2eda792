package reviews

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// PatchUpdate edits a review's text. Only the writer may edit.
// PATCH /api/v1/reviews/:id
func PatchUpdate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := types.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Authentication required."})
			return
		}
		reviewID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var request struct {
			Description string `json:"description" binding:"required"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Description is required."})
			return
		}

		if err := deps.ReviewService.Update(c.Request.Context(), user.ID, reviewID, request.Description); err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{})
	}
}

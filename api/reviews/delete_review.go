package reviews

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// DeleteReview removes a review. Only the writer may delete.
// DELETE /api/v1/reviews/:id
func DeleteReview(deps *types.Dependencies) gin.HandlerFunc {
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

		if err := deps.ReviewService.Delete(c.Request.Context(), user.ID, reviewID); err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{})
	}
}

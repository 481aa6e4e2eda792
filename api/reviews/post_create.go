package reviews

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// PostCreate writes a review of a podcast as the authenticated user.
// POST /api/v1/podcasts/:id/reviews
func PostCreate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := types.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Authentication required."})
			return
		}
		podcastID, ok := types.ParseUintParam(c, "id")
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

		review, err := deps.ReviewService.Create(c.Request.Context(), user, podcastID, request.Description)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusCreated, gin.H{"review": review})
	}
}

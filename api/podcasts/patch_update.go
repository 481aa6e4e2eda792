package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
	"github.com/podshelf/catalog-api/internal/models"
)

// PatchUpdate updates a podcast the authenticated host owns. Absent fields
// are left untouched.
// PATCH /api/v1/podcasts/:id
func PatchUpdate(deps *types.Dependencies) gin.HandlerFunc {
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

		var patch models.PodcastPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Invalid request body."})
			return
		}

		// Ownership gate before any write.
		if _, err := deps.PodcastService.GetForHost(c.Request.Context(), user.ID, podcastID); err != nil {
			types.Fail(c, err)
			return
		}

		if err := deps.PodcastService.Update(c.Request.Context(), podcastID, patch); err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{})
	}
}

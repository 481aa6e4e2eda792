package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
	"github.com/podshelf/catalog-api/internal/services/podcasts"
)

// PostCreate creates a podcast for the authenticated host, resolving hashtag
// names to tags on the way.
// POST /api/v1/podcasts
func PostCreate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := types.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Authentication required."})
			return
		}

		var input podcasts.CreatePodcastInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Title and description are required."})
			return
		}

		podcast, err := deps.PodcastService.Create(c.Request.Context(), user, input)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusCreated, gin.H{"podcast": podcast})
	}
}

package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// GetMine returns a page of the podcasts hosted by the authenticated host.
// GET /api/v1/podcasts/mine?page=
func GetMine(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := types.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Authentication required."})
			return
		}
		page := types.ParsePageQuery(c)

		list, err := deps.PodcastService.ListByHost(c.Request.Context(), user.ID, page)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{
			"podcasts":    list.Podcasts,
			"total_count": list.TotalCount,
			"total_pages": list.TotalPages,
		})
	}
}

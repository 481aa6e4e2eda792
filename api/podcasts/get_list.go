package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// GetList returns a page of the whole catalog.
// GET /api/v1/podcasts?page=
func GetList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := types.ParsePageQuery(c)

		list, err := deps.PodcastService.ListAll(c.Request.Context(), page)
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

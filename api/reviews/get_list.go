package reviews

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// GetList returns every review of a podcast.
// GET /api/v1/podcasts/:id/reviews
func GetList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		reviews, err := deps.ReviewService.List(c.Request.Context(), podcastID)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{"reviews": reviews})
	}
}

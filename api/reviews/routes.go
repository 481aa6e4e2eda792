package reviews

import (
	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// RegisterRoutes registers review routes. Reading and writing reviews hangs
// off the parent podcast; editing and deleting address the review directly
// and are gated to its writer.
func RegisterRoutes(podcastRouter, reviewRouter *gin.RouterGroup, deps *types.Dependencies) {
	podcastRouter.GET("/:id/reviews", GetList(deps))
	podcastRouter.POST("/:id/reviews", PostCreate(deps))

	reviewRouter.PATCH("/:id", PatchUpdate(deps))
	reviewRouter.DELETE("/:id", DeleteReview(deps))
}

package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// RegisterRoutes registers the public account routes.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/register", PostRegister(deps))
	router.POST("/login", PostLogin(deps))
	router.GET("/check-email", GetCheckEmail(deps))
}

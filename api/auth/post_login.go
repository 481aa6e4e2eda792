package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podshelf/catalog-api/api/types"
)

// PostLogin exchanges credentials for a signed access token.
// POST /api/v1/auth/login
func PostLogin(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Email and password are required."})
			return
		}

		token, err := deps.UserService.Login(c.Request.Context(), request.Email, request.Password)
		if err != nil {
			types.Fail(c, err)
			return
		}

		types.OK(c, http.StatusOK, gin.H{"token": token})
	}
}

package types

import (
	"github.com/gin-gonic/gin"

	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
)

// Every response carries the uniform envelope: ok plus either payload fields
// or a human-readable error message. Failures never surface as anything else.

// OK writes a success envelope with optional payload fields.
func OK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"ok": true}
	for key, value := range payload {
		body[key] = value
	}
	c.JSON(status, body)
}

// Fail writes a failure envelope, mapping the error kind to an HTTP status.
func Fail(c *gin.Context, err error) {
	c.JSON(catalogerrors.HTTPStatus(err), gin.H{
		"ok":    false,
		"error": catalogerrors.Message(err),
	})
}

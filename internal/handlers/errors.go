package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// attachError attaches err to the gin context so the observability middleware
// can include the reason in the request log. c.Error() returns *gin.Error (not
// the error interface), so we suppress errcheck here intentionally.
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends an error JSON response and attaches the error to the gin
// context. The message is a static, resource-scoped string; the real error
// only ever reaches the logs.
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, gin.H{"error": message})
}

// respondValidationError sends a 400 with per-field details
func respondValidationError(c *gin.Context, err error) {
	attachError(c, err)
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": ParseValidationErrors(err)})
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every response carries the {success: bool} envelope the website clients
// expect. Payload keys (contact, blog, blogs, ...) ride alongside it.

// Pagination metadata returned with paginated list responses.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	TotalPage   int   `json:"total_page"`
	Size        int   `json:"size"`
	HasNextPage bool  `json:"has_next_page"`
}

// OK sends a 200 success envelope merged with the given payload.
func OK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// BadRequest sends a 400 error envelope.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// Unauthorized sends a 401 error envelope.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
}

// NotFound sends a 404 error envelope.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "error": message})
}

// MethodNotAllowed sends a 405 error envelope.
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"success": false, "error": "Method not allowed"})
}

// TooManyRequests sends a 429 error envelope.
func TooManyRequests(c *gin.Context, message string) {
	c.Header("Retry-After", "1")
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"success": false, "error": message})
}

// InternalError sends a 500 error envelope. The underlying error is never
// exposed to the client; callers log it.
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
}

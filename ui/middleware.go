package ui

import (
	"io/fs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestID tags every request with an X-Request-ID header so log lines from
// concurrent dashboard sessions can be correlated. An incoming ID is kept.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// staticSubFS roots the embedded filesystem at static/ so asset URLs do not
// repeat the directory name.
func staticSubFS() (fs.FS, error) {
	return fs.Sub(embeddedFiles, "static")
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodsnap/internal/transport/http/response"
)

// BodyLimit rejects requests whose declared length exceeds maxBytes and
// caps the body reader for the rest, so chunked uploads cannot bypass it.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Abort(c, http.StatusRequestEntityTooLarge, response.MsgTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

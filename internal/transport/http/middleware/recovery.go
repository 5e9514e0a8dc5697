package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"foodsnap/internal/transport/http/response"
)

// Recovery turns handler panics into a JSON 500 without leaking details.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zerolog.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("handler panicked")
		response.Abort(c, http.StatusInternalServerError, response.MsgInternalServer)
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodsnap/web"
)

// Index serves the upload page.
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

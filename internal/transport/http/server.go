package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodsnap/internal/bootstrap"
	"foodsnap/internal/transport/http/handler"
	"foodsnap/internal/transport/http/middleware"
	"foodsnap/internal/transport/http/response"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.MaxMultipartMemory = app.Config.Upload.MaxBytes
	router.Use(middleware.RequestLogger(app.Logger, app.Metrics), middleware.Recovery())
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, response.MsgNotFound)
	})

	healthHandler := handler.NewHealthHandler(app)
	analyzeHandler := handler.NewAnalyzeHandler(app.Analysis, app.Config.Upload.FormField)

	router.GET("/", handler.Index)
	router.GET("/healthz", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(app.Metrics.Handler()))
	router.POST("/analyze", middleware.BodyLimit(app.Config.Upload.MaxBytes), analyzeHandler.Analyze)

	return router
}

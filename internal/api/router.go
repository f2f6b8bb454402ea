package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"underwrite/internal"
)

// NewRouter builds the gin engine for the underwriting API
func NewRouter(handler *SessionHandler, hub *SSEHub, logger *internal.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/api/questions", CatalogQuestions)

	sessions := router.Group("/api/sessions")
	{
		sessions.POST("", handler.CreateSession)
		sessions.GET("", handler.ListSessions)
		sessions.POST("/recompute", handler.RecomputeAll)
		sessions.GET("/:id", handler.GetSession)
		sessions.POST("/:id/answers", handler.SubmitAnswer)
		sessions.PATCH("/:id/demographics", handler.UpdateDemographics)
		sessions.POST("/:id/intake", handler.ApplyIntake)
		sessions.GET("/:id/questions", handler.AvailableQuestions)
		sessions.POST("/:id/recompute", handler.RecomputeSession)
		if hub != nil {
			sessions.GET("/:id/events", hub.HandleSSE)
		}
	}

	return router
}

func requestLogger(logger *internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

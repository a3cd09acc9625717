package server

import (
	"net/http"
	"time"

	"pagecaster/infrastructure/configuration"
	httpHandler "pagecaster/interfaces/http"
	"pagecaster/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	publishHandler httpHandler.IPublishHandler,
	pageHandler httpHandler.IPageHandler,
	facebookOAuthHandler httpHandler.IFacebookOAuthHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	frontend := configuration.C.App.FrontendURL
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontend, "http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// OAuth routes stay outside the session guard.
	router.GET("/auth/facebook", facebookOAuthHandler.Login)
	router.GET("/auth/facebook/callback", facebookOAuthHandler.Callback)
	router.POST("/auth/logout", facebookOAuthHandler.Logout)

	api := router.Group("api")
	api.Use(middleware.Auth())

	api.GET("/pages/available", pageHandler.ListAvailablePages)
	api.GET("/pages", pageHandler.ListRegisteredPages)
	api.POST("/pages", pageHandler.SavePage)
	api.DELETE("/pages/:pageId", pageHandler.RemovePage)

	api.POST("/publish", publishHandler.Publish)
	api.POST("/publish/compose", publishHandler.Compose)

	api.GET("/pages/:pageId/posts", publishHandler.ListPosts)
	api.PATCH("/pages/:pageId/posts/:postId", publishHandler.EditPost)
	api.POST("/pages/:pageId/posts/:postId/hide", publishHandler.HidePost)
	api.DELETE("/pages/:pageId/posts/:postId", publishHandler.DeletePost)
	api.GET("/pages/:pageId/posts/:postId/insights", publishHandler.PostInsights)

	return router
}

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fin-circle.backend/internal/interfaces/http/handlers"
	"fin-circle.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	profileHandler *handlers.ProfileHandler
	surveyHandler  *handlers.SurveyHandler
	historyHandler *handlers.HistoryHandler
	forumHandler   *handlers.ForumHandler
	adminHandler   *handlers.AdminHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/sms-code", d.authHandler.SendCode)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
			auth.POST("/logout", d.authMiddleware, d.authHandler.Logout)
		}

		// Profile directory (protected)
		profiles := v1.Group("/profiles")
		profiles.Use(d.authMiddleware)
		{
			profiles.POST("/search", d.profileHandler.Search)
			profiles.POST("/:id/reveal", d.profileHandler.Reveal)
		}

		// Risk survey (protected)
		survey := v1.Group("/survey")
		survey.Use(d.authMiddleware)
		{
			survey.GET("/eligibility", d.surveyHandler.Eligibility)
			survey.GET("/submissions", d.surveyHandler.Submissions)
			survey.POST("", d.surveyHandler.Submit)
		}

		// Profile action history (protected)
		history := v1.Group("/history")
		history.Use(d.authMiddleware)
		{
			history.POST("", d.historyHandler.Record)
			history.GET("", d.historyHandler.List)
		}

		// Forum (public read, protected write)
		posts := v1.Group("/posts")
		{
			posts.GET("", d.forumHandler.List)
			posts.GET("/:id", d.forumHandler.Get)
			posts.POST("", d.authMiddleware, d.forumHandler.Create)
			posts.POST("/:id/replies", d.authMiddleware, d.forumHandler.Reply)
		}

		// Moderation (admin only)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/posts/pending", d.adminHandler.PendingPosts)
			admin.POST("/posts/:id/approve", d.adminHandler.ApprovePost)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "fin-circle-backend",
			"version": "0.1.0",
		})
	})
}

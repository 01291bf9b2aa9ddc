// Package routes defines HTTP routes for the task manager.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Aaryan-2k/TaskManagerAPI/internal/handlers"
	"github.com/Aaryan-2k/TaskManagerAPI/internal/middleware"
)

// Setup configures all HTTP routes for the application. Each operation
// is registered with its policy-table entry; the auth gate runs before
// the handler dispatches.
func Setup(
	router *gin.Engine,
	auth middleware.TokenAuthenticator,
	accountHandler *handlers.AccountHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/account/create/", middleware.Authenticate(auth, middleware.OpAccountCreate), accountHandler.Create)

		v1.POST("/token/", middleware.Authenticate(auth, middleware.OpTokenObtain), authHandler.Obtain)
		v1.POST("/token/refresh/", middleware.Authenticate(auth, middleware.OpTokenRefresh), authHandler.Refresh)
		v1.POST("/token/logout/", middleware.Authenticate(auth, middleware.OpTokenLogout), authHandler.Logout)

		v1.GET("/tasks/", middleware.Authenticate(auth, middleware.OpTaskList), taskHandler.List)
		v1.POST("/tasks/", middleware.Authenticate(auth, middleware.OpTaskCreate), taskHandler.Create)
		v1.GET("/tasks/:id/", middleware.Authenticate(auth, middleware.OpTaskRetrieve), taskHandler.Retrieve)
		v1.PUT("/tasks/:id/", middleware.Authenticate(auth, middleware.OpTaskUpdate), taskHandler.Update)
		v1.DELETE("/tasks/:id/", middleware.Authenticate(auth, middleware.OpTaskDelete), taskHandler.Delete)
	}
}

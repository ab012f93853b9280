package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/synergysphere-dev/synergysphere/internal/handlers"
	"github.com/synergysphere-dev/synergysphere/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/auth/google", handlers.GoogleAuth)
		api.GET("/users", handlers.ListUsers)

		projects := api.Group("/projects")
		{
			projects.GET("", handlers.ListProjects)
			projects.POST("", handlers.CreateProject)
			projects.GET("/:project_id", handlers.GetProject)
			projects.DELETE("/:project_id", handlers.DeleteProject)

			projects.POST("/:project_id/members", handlers.AddProjectMember)

			projects.GET("/:project_id/messages", handlers.ListMessages)
			projects.POST("/:project_id/messages", handlers.CreateMessage)

			projects.POST("/:project_id/tasks", handlers.CreateTask)
		}

		tasks := api.Group("/tasks")
		{
			tasks.PUT("/:task_id", handlers.UpdateTask)
			tasks.DELETE("/:task_id", handlers.DeleteTask)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", handlers.ListNotifications)
			notifications.PUT("/:notification_id/read", handlers.MarkNotificationRead)
		}
	}

	return r
}

package routes

import (
	"devtrack-api/controllers"
	"devtrack-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "DevTrack API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Projects
			projects := protected.Group("/projects")
			{
				projects.GET("", controllers.GetProjects)
				projects.POST("", controllers.CreateProject)
				projects.GET("/:id", controllers.GetProject)
				projects.PUT("/:id", controllers.UpdateProject)
				projects.DELETE("/:id", controllers.DeleteProject)

				// Budget tree
				projects.GET("/:id/budget", controllers.GetProjectBudget)
				projects.POST("/:id/budget/categories", controllers.CreateBudgetCategory)

				// Documents
				projects.GET("/:id/documents", controllers.GetProjectDocuments)
				projects.POST("/:id/documents", controllers.UploadDocument)

				// Roadmap
				projects.GET("/:id/roadmap", controllers.GetProjectRoadmap)
				projects.PUT("/:id/roadmap/steps/:step_id", controllers.UpdateProjectStep)
			}

			// Budget categories and line items
			categories := protected.Group("/categories")
			{
				categories.PUT("/:category_id", controllers.UpdateBudgetCategory)
				categories.POST("/:category_id/items", controllers.CreateBudgetItem)
			}

			items := protected.Group("/items")
			{
				items.PUT("/:item_id", controllers.UpdateBudgetItem)
				items.GET("/:item_id/invoices", controllers.GetItemInvoices)
				items.POST("/:item_id/invoices", controllers.CreateInvoice)
			}

			// Documents
			documents := protected.Group("/documents")
			{
				documents.GET("/download/:document_id", controllers.DownloadDocument)
				documents.DELETE("/:document_id", controllers.DeleteDocument)
			}

			// Pro forma (stateless, recomputed per request)
			protected.POST("/proforma/calculate", controllers.CalculateProForma)

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)
		}
	}
}

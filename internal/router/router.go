package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hintyu/PLAIGROUND-wishmoa/internal/config"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/handler"
	"github.com/hintyu/PLAIGROUND-wishmoa/internal/middleware"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "wishmoa",
		})
	})

	authHandler := handler.NewAuthHandler(db)
	itemHandler := handler.NewItemHandler(db)
	donationHandler := handler.NewDonationHandler(db)
	projectHandler := handler.NewProjectHandler(db)

	requireAuth := middleware.RequireAuth(db)

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		items := v1.Group("/items")
		{
			// Public item views
			items.GET("/:itemId/progress", itemHandler.GetItemProgress)
			items.GET("/:itemId/donations", itemHandler.ListItemDonations)

			// Owner-only mutations
			items.POST("", requireAuth, itemHandler.CreateItem)
			items.PATCH("/reorder", requireAuth, itemHandler.ReorderItems)
			items.PATCH("/:itemId", requireAuth, itemHandler.UpdateItem)
			items.DELETE("/:itemId", requireAuth, itemHandler.DeleteItem)
		}

		donations := v1.Group("/donations")
		{
			// Donation creation is open to anonymous supporters
			donations.POST("", donationHandler.CreateDonation)

			donations.PATCH("/:donationId", requireAuth, donationHandler.UpdateDonation)
			donations.DELETE("/:donationId", requireAuth, donationHandler.DeleteDonation)
		}

		projects := v1.Group("/projects")
		{
			projects.GET("/:projectId", projectHandler.GetProjectPage)

			projects.POST("", requireAuth, projectHandler.CreateProject)
			projects.PATCH("/:projectId", requireAuth, projectHandler.UpdateProject)
			projects.DELETE("/:projectId", requireAuth, projectHandler.DeleteProject)
			projects.GET("/:projectId/donations", requireAuth, donationHandler.ListProjectDonations)
		}
	}

	return r
}

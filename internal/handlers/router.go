package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/careerbridge/jobboard/internal/middleware"
	"github.com/careerbridge/jobboard/internal/services"
)

// NewRouter wires services, middleware and the route table onto one engine.
func NewRouter(db *gorm.DB, requestTimeout time.Duration) *gin.Engine {
	authHandler := NewAuthHandler(services.NewAuthService(db))
	jobHandler := NewJobHandler(services.NewJobService(db))
	applicationHandler := NewApplicationHandler(services.NewApplicationService(db))
	directoryHandler := NewDirectoryHandler(services.NewDirectoryService(db))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Timeout(requestTimeout))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api")
	{
		api.GET("/health", HealthCheck)

		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/jobs", jobHandler.ListJobs)
		api.POST("/jobs", jobHandler.PostJob)
		api.GET("/company-jobs/:userId", jobHandler.CompanyJobs)

		api.POST("/apply", applicationHandler.Apply)
		api.POST("/applications", applicationHandler.Apply)
		api.GET("/applications/:userId", applicationHandler.ListByUser)
		api.PUT("/applications/:applicationId", applicationHandler.UpdateStatus)

		api.GET("/companies", directoryHandler.Companies)
		api.GET("/applicants", directoryHandler.Applicants)
	}

	return r
}

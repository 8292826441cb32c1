package app

import (
	"yonko_backend/docs"
	"yonko_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/user", c.user.CreateUser)

		// 编目是进程级只读数据，无需身份
		catalogGroup := api.Group("/catalog")
		{
			catalogGroup.GET("/:country", c.catalog.GetCatalog)
			catalogGroup.GET("/:country/requirements", c.catalog.GetRequirements)
		}

		// 路线图按访问码定位数据归属
		roadmap := api.Group("/roadmap")
		{
			roadmap.GET("/:code", c.roadmap.GetAllRoadmaps)
			roadmap.POST("/:code/:universityId", c.roadmap.InitializeRoadmap)
			roadmap.GET("/:code/:universityId", c.roadmap.GetRoadmap)
			roadmap.DELETE("/:code/:universityId", c.roadmap.DeleteRoadmap)
			roadmap.GET("/:code/:universityId/progress", c.roadmap.GetProgress)
			roadmap.PUT("/:code/:universityId/requirements/:requirementId", c.roadmap.UpdateRequirement)
			roadmap.PUT("/:code/:universityId/notes/:requirementId", c.roadmap.UpdateNote)
		}
	}
}

// internal/admin/admin_routes.go
package admin

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/picklefree/picklefree/config"
	"github.com/picklefree/picklefree/internal/middleware"
)

func RegisterAdminRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	controller := NewController(db)
	media := NewMediaController(appConfig.App.MediaDir)

	grupo := router.Group("/admin")
	grupo.Use(middleware.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		grupo.POST("/media/:kind", media.Upload)
		grupo.GET("/:entity", controller.List)
		grupo.POST("/:entity", controller.Create)
		grupo.GET("/:entity/:id", controller.Get)
		grupo.PUT("/:entity/:id", controller.Update)
		grupo.DELETE("/:entity/:id", controller.Delete)
	}
}

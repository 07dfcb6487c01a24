// internal/auth/auth_routes.go
package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/picklefree/picklefree/config"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewRepository(db)
	controller := NewController(repo, appConfig)

	grupo := router.Group("/auth")
	{
		grupo.POST("/login", controller.Login)
		grupo.POST("/refresh", controller.Refresh)
	}
}

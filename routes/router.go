package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/picklefree/picklefree/config"
	"github.com/picklefree/picklefree/internal/admin"
	"github.com/picklefree/picklefree/internal/auth"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Uploaded files (fotos, planos, curriculums) are served as-is.
	r.Static(appConfig.App.MediaURL, appConfig.App.MediaDir)

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>`+appConfig.App.AdminCabecera+`</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>`+appConfig.App.AdminTitulo+`</h1>
					<div><a href="/swagger/index.html">API</a></div>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)
	admin.RegisterAdminRoutes(api, db, appConfig)

	return r
}

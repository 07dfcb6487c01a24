package main

import (
	"github.com/sirupsen/logrus"

	"github.com/picklefree/picklefree/config"
	_ "github.com/picklefree/picklefree/docs"
	"github.com/picklefree/picklefree/internal/admin"
	"github.com/picklefree/picklefree/routes"
)

// @title Picklefree REST API
// @version 1.0
// @description API de administración de la plataforma Picklefree.
// @host localhost:8080
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	if err := config.DB.AutoMigrate(admin.Models()...); err != nil {
		logrus.Fatalf("AutoMigrate failed: %v", err)
	}
	logrus.Info("AutoMigrate successful")

	if err := admin.AplicarComentariosDeTabla(config.DB); err != nil {
		logrus.Fatalf("Table comments failed: %v", err)
	}

	r := routes.SetupRoutes(config.DB, cfg)

	logrus.Infof("Starting server on port %s in %s mode", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		logrus.Fatalf("Failed to run server: %v", err)
	}
}

package main

import (
	"context"
	"log"
	"os"

	"library-management-system/app"
	"library-management-system/config"
	"library-management-system/db"
	"library-management-system/routes"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	if application.Config.SeedSampleData {
		repo := db.NewRepo(application.DB)
		if err := repo.SeedSampleData(context.Background()); err != nil {
			log.Printf("seed: %v", err)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}

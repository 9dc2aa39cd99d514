package main

import (
	"Recipe-Catalog-Backend/cmd/config"
	"Recipe-Catalog-Backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	store, err := config.ConnectStore()
	if err != nil {
		log.Fatalf("Store connection failed: %v", err)
	}

	app, err := config.NewApp(store)
	if err != nil {
		log.Fatalf("App setup failed: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

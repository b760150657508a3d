package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/vitrine-store/gateway/internal/router"
	"github.com/vitrine-store/gateway/pkg/global"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	router.InitEngine()
	router.InitDependencies()
	router.InitializeRoutes()

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Storefront gateway is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

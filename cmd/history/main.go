package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mkuznecov/bank-app/config"
	"github.com/mkuznecov/bank-app/models"
	"github.com/mkuznecov/bank-app/router"
	"github.com/mkuznecov/bank-app/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}
	utils.InitLogger()

	db, err := config.InitDB("HISTORY")
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := db.AutoMigrate(&models.History{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	r := router.SetupHistoryRouter(db)

	port := os.Getenv("HISTORY_PORT")
	if port == "" {
		port = "8088"
	}
	utils.InfoLogger.Printf("History service listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

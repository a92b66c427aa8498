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

	db, err := config.InitDB("ACCOUNT")
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := db.AutoMigrate(&models.AccountDetails{}, &models.Audit{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	r := router.SetupAccountRouter(db)

	port := os.Getenv("ACCOUNT_PORT")
	if port == "" {
		port = "8085"
	}
	utils.InfoLogger.Printf("Account service listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

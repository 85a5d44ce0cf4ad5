package main

import (
	"log"

	"risiko-ladder-api/config"
	"risiko-ladder-api/cron"
	_ "risiko-ladder-api/docs" // Swagger docs
	"risiko-ladder-api/handlers"
	"risiko-ladder-api/middleware"
	"risiko-ladder-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Risiko Ladder API
// @version         1.0
// @description     ELO ladder for winner-takes-all multiplayer Risk matches

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  AdminKey
// @in header
// @name X-Admin-Key
// @description Shared admin secret for administrative endpoints.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ConnectDatabase()

	playerService := services.NewPlayerService(config.DB)
	matchService := services.NewMatchService(config.DB)
	settingsService := services.NewSettingsService(config.DB)
	statsService := services.NewStatsService(config.DB)

	playerHandler := handlers.NewPlayerHandler(playerService, matchService)
	matchHandler := handlers.NewMatchHandler(matchService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	statsHandler := handlers.NewStatsHandler(statsService)

	scheduler := cron.NewScheduler(statsService)
	if err := scheduler.Start(); err != nil {
		log.Fatal("Failed to start scheduler: ", err)
	}
	defer scheduler.Stop()

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", healthHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/leaderboard", playerHandler.GetLeaderboard)
		api.GET("/players/:id", playerHandler.GetPlayer)
		api.GET("/matches", matchHandler.GetMatches)
		api.GET("/settings", settingsHandler.GetSettings)
		api.GET("/stats", statsHandler.GetStats)
	}

	admin := r.Group("/api")
	admin.Use(middleware.AdminKey(config.AdminKey()))
	{
		admin.POST("/players", playerHandler.CreatePlayer)
		admin.DELETE("/players/:id", playerHandler.DeletePlayer)
		admin.POST("/matches", matchHandler.RecordMatch)
		admin.DELETE("/matches/:id", matchHandler.DeleteMatch)
		admin.PUT("/settings", settingsHandler.UpdateSettings)
	}

	port := config.Port()
	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and database is connected
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func healthHandler(c *gin.Context) {
	c.JSON(200, HealthResponse{
		Message:  "Server is running",
		Database: "connected",
	})
}

package main

import (
	"log"
	"strconv"
	"time"

	"momentum/config"
	"momentum/controllers"
	"momentum/db"
	"momentum/middlewares"
	"momentum/routes"
	"momentum/services"
	"momentum/utils"
	"momentum/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetJWTExpiry(cfg.JWT.Expiry)
	utils.InitEmail(cfg)

	services.InitSuggestionService(cfg)
	controllers.InitAuthController(cfg.Google.ClientID)
	controllers.InitCalendarController(cfg)
	controllers.InitOTPStore(services.NewOTPStore(10 * time.Minute))

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	// Seed the built-in habit templates
	utils.SeedDefaultTemplates()

	reminder := services.StartReminderService(cfg.Reminder.Hour, cfg.Reminder.Minute)
	defer reminder.Stop()

	// Set up the Gin router and configure routes
	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	router.GET("/api/health", routes.HealthCheckRouteHandler)

	// Public routes for authentication
	router.POST("/api/auth/register", routes.RegisterRouteHandler)
	router.POST("/api/auth/login", routes.LoginRouteHandler)
	router.POST("/api/auth/google", routes.GoogleLoginRouteHandler)

	// The calendar callback is hit by Google's redirect, carrying the user
	// in the state parameter
	router.GET("/api/calendar/callback", routes.CalendarCallbackRouteHandler)

	// WebSocket feed authenticates via header or query token itself
	router.GET("/ws/gamification", websocket.GamificationWebSocketHandler)

	// Protected routes (JWT auth)
	auth := router.Group("/api")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/auth/me", routes.GetMeRouteHandler)
		auth.PUT("/auth/profile", routes.UpdateProfileRouteHandler)

		auth.GET("/habits", routes.GetHabitsRouteHandler)
		auth.POST("/habits", routes.CreateHabitRouteHandler)
		auth.GET("/habits/stats", routes.GetHabitStatsRouteHandler)
		auth.DELETE("/habits/:id", routes.DeleteHabitRouteHandler)
		auth.POST("/habits/:id/complete", routes.CompleteHabitRouteHandler)
		auth.POST("/habits/:id/uncomplete", routes.UncompleteHabitRouteHandler)

		auth.GET("/tasks", routes.GetTasksRouteHandler)
		auth.POST("/tasks", routes.CreateTaskRouteHandler)
		auth.GET("/tasks/stats", routes.GetTaskStatsRouteHandler)
		auth.PUT("/tasks/:id", routes.UpdateTaskRouteHandler)
		auth.DELETE("/tasks/:id", routes.DeleteTaskRouteHandler)

		auth.GET("/reports/weekly", routes.GetWeeklyReportRouteHandler)
		auth.GET("/reports/monthly", routes.GetMonthlyReportRouteHandler)

		auth.GET("/gamification/stats", routes.GetGamificationStatsRouteHandler)
		auth.POST("/gamification/award-xp", routes.AwardXPRouteHandler)

		auth.GET("/leaderboard", routes.GetLeaderboardRouteHandler)
		auth.POST("/leaderboard/update", routes.UpdateLeaderboardScoreRouteHandler)

		auth.POST("/mood", routes.LogMoodRouteHandler)
		auth.GET("/mood", routes.GetMoodHistoryRouteHandler)
		auth.GET("/mood/insights", routes.GetMoodInsightsRouteHandler)

		auth.GET("/location/nearby", routes.GetNearbyRouteHandler)
		auth.POST("/location/home-location", routes.SetHomeLocationRouteHandler)

		auth.POST("/2fa/generate-otp", routes.GenerateOTPRouteHandler)
		auth.POST("/2fa/enable", routes.Enable2FARouteHandler)
		auth.POST("/2fa/disable", routes.Disable2FARouteHandler)
		auth.POST("/2fa/verify-otp", routes.VerifyOTPRouteHandler)

		auth.GET("/calendar/auth-url", routes.GetCalendarAuthURLRouteHandler)
		auth.POST("/calendar/sync", routes.SyncCalendarRouteHandler)
		auth.POST("/calendar/disconnect", routes.DisconnectCalendarRouteHandler)

		auth.GET("/templates", routes.GetTemplatesRouteHandler)
		auth.POST("/templates/:id/apply", routes.ApplyTemplateRouteHandler)

		auth.POST("/collaboration/habits/:id/share", routes.ShareHabitRouteHandler)
		auth.POST("/collaboration/tasks/:id/share", routes.ShareTaskRouteHandler)
		auth.GET("/collaboration/shared", routes.GetSharedItemsRouteHandler)
		auth.DELETE("/collaboration/:type/:id/collaborators/:userId", routes.RemoveCollaboratorRouteHandler)

		auth.GET("/backup/export", routes.ExportDataRouteHandler)
		auth.POST("/backup/import", routes.ImportDataRouteHandler)

		auth.GET("/ai/suggestions", routes.GetSuggestionsRouteHandler)
		auth.POST("/ai/chat", routes.ChatRouteHandler)

		auth.GET("/stats", routes.GetCombinedStatsRouteHandler)
	}

	return router
}

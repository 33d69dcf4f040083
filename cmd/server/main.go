package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/respira-app/respira-backend/internal/agent"
	"github.com/respira-app/respira-backend/internal/config"
	"github.com/respira-app/respira-backend/internal/handler"
	"github.com/respira-app/respira-backend/internal/middleware"
	"github.com/respira-app/respira-backend/internal/model"
	"github.com/respira-app/respira-backend/internal/repository"
	"github.com/respira-app/respira-backend/internal/service"
	"github.com/respira-app/respira-backend/pkg/database"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := seedHealthRecoveries(db); err != nil {
		log.Fatalf("failed to seed health recoveries: %v", err)
	}

	redisClient := connectRedis(cfg.RedisURL)

	llmClient, err := service.NewLLMClient(context.Background())
	if err != nil {
		log.Printf("⚠️ LLM client unavailable, daily motivations will use fallback text: %v", err)
		llmClient = nil
	}

	userRepo := repository.NewUserRepository(db)
	smokingLogRepo := repository.NewSmokingLogRepository(db)
	cravingRepo := repository.NewCravingRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	onboardingRepo := repository.NewOnboardingRepository(db)
	recoveryRepo := repository.NewRecoveryRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	experienceRepo := repository.NewExperienceRepository(db)
	fcmTokenRepo := repository.NewFCMTokenRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	motivationRepo := repository.NewMotivationRepository(db)

	notificationService := service.NewNotificationService(notificationRepo, redisClient)
	notificationHandler := handler.NewNotificationHandler(notificationService, redisClient)

	experienceService := service.NewExperienceService(experienceRepo)

	statsService := service.NewStatsService(smokingLogRepo, cravingRepo, statsRepo, onboardingRepo)
	statsHandler := handler.NewStatsHandler(statsService)

	recoveryService := service.NewRecoveryService(recoveryRepo, statsRepo, cravingRepo, experienceService, notificationService)
	recoveryHandler := handler.NewRecoveryHandler(recoveryService)

	motivationService := service.NewMotivationService(userRepo, statsRepo, notificationService, notificationRepo, motivationRepo, experienceService, llmClient, cfg.MotivationXP)
	motivationHandler := handler.NewMotivationHandler(motivationService)

	fcmService := service.NewFCMService(fcmTokenRepo)
	fcmHandler := handler.NewFCMHandler(fcmService)

	feedbackService := service.NewFeedbackService(feedbackRepo)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	accountService := service.NewAccountService(
		userRepo, smokingLogRepo, cravingRepo, statsRepo, onboardingRepo,
		recoveryRepo, notificationRepo, experienceRepo, fcmTokenRepo,
		feedbackRepo, motivationRepo,
	)
	accountHandler := handler.NewAccountHandler(accountService)

	router := gin.Default()
	setupCORS(router, cfg.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware()

	api := router.Group("/api")
	{
		// Backend-to-backend function endpoints, triggered by the app's
		// event pipeline rather than the end user.
		functions := api.Group("/functions")
		{
			functions.POST("/recalculate-stats", statsHandler.RecalculateStats)
			functions.POST("/check-health-recoveries", recoveryHandler.CheckRecoveries)
			functions.POST("/generate-daily-motivation", motivationHandler.Generate)
			functions.POST("/store-fcm-token", fcmHandler.StoreToken)
		}

		protected := api.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			protected.POST("/functions/claim-motivation-reward", motivationHandler.ClaimReward)
			protected.POST("/functions/app-feedback", feedbackHandler.Submit)
			protected.POST("/functions/delete-account", accountHandler.DeleteAccount)

			protected.GET("/notifications", notificationHandler.GetNotifications)
			protected.GET("/notifications/unread-count", notificationHandler.UnreadCount)
			protected.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)
			protected.PUT("/notifications/read-all", notificationHandler.MarkAllAsRead)
			protected.GET("/notifications/ws", notificationHandler.HandleWebSocket)
		}
	}

	scheduler := agent.NewScheduler()
	scheduler.RegisterAgent(agent.NewMotivationAgent(userRepo, motivationService, cfg.MotivationCron))
	scheduler.Start()
	defer scheduler.Stop()

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.OnboardingData{},
		&model.SmokingLog{},
		&model.Craving{},
		&model.UserStats{},
		&model.HealthRecovery{},
		&model.UserHealthRecovery{},
		&model.Notification{},
		&model.XPLog{},
		&model.UserXP{},
		&model.FCMToken{},
		&model.Feedback{},
		&model.DailyMotivationLog{},
	)
}

// seedHealthRecoveries inserts the milestone catalog. Existing rows are left
// untouched so redeploys never duplicate or reset them.
func seedHealthRecoveries(db *gorm.DB) error {
	recoveryRepo := repository.NewRecoveryRepository(db)

	defaults := []model.HealthRecovery{
		{Name: "Heart Rate", Description: "Your heart rate and blood pressure drop back to normal levels.", DaysToAchieve: 1, XPReward: 10},
		{Name: "Carbon Monoxide", Description: "The carbon monoxide level in your blood returns to normal.", DaysToAchieve: 2, XPReward: 15},
		{Name: "Nicotine Free", Description: "Nicotine is fully eliminated from your body.", DaysToAchieve: 3, XPReward: 20},
		{Name: "Taste and Smell", Description: "Your senses of taste and smell begin to sharpen again.", DaysToAchieve: 7, XPReward: 30},
		{Name: "Breathing", Description: "Breathing gets easier as bronchial tubes relax.", DaysToAchieve: 14, XPReward: 40},
		{Name: "Circulation", Description: "Your circulation improves and lung function increases.", DaysToAchieve: 30, XPReward: 60},
		{Name: "Lung Cilia", Description: "Cilia regrow in your lungs, reducing infection risk.", DaysToAchieve: 90, XPReward: 100},
		{Name: "Heart Disease Risk", Description: "Your risk of coronary heart disease is half that of a smoker.", DaysToAchieve: 365, XPReward: 200},
	}

	for _, recovery := range defaults {
		count, err := recoveryRepo.CountDefinitionsByName(recovery.Name)
		if err != nil {
			return err
		}
		if count == 0 {
			if err := recoveryRepo.CreateDefinition(&recovery); err != nil {
				return err
			}
		}
	}

	return nil
}

func connectRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("⚠️ REDIS_URL not set, realtime notification push disabled")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("⚠️ Invalid REDIS_URL, realtime notification push disabled: %v", err)
		return nil
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("⚠️ Redis unreachable, realtime notification push disabled: %v", err)
		return nil
	}

	log.Println("✅ Connected to Redis")
	return client
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

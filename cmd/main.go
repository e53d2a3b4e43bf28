package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nshiba/enquete-api/config"
	"github.com/nshiba/enquete-api/database"
	_ "github.com/nshiba/enquete-api/docs" // Swagger docs - auto-generated
	adminctrl "github.com/nshiba/enquete-api/internal/controller/admin"
	publicctrl "github.com/nshiba/enquete-api/internal/controller/public"
	"github.com/nshiba/enquete-api/internal/logger"
	"github.com/nshiba/enquete-api/internal/middleware"
	"github.com/nshiba/enquete-api/internal/model"
	"github.com/nshiba/enquete-api/internal/repository"
	"github.com/nshiba/enquete-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Enquete API
// @version 1.0
// @description Survey builder and anonymous response collector with results aggregation and CSV export.
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewSurveyRepository,
			repository.NewQuestionRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewAdminSurveyService,
			service.NewQuestionService,
			service.NewPublicSurveyService,
			// SubmissionService needs *gorm.DB for its transaction handling
			func(surveyRepo repository.SurveyRepository, db *gorm.DB) service.SubmissionService {
				return service.NewSubmissionService(surveyRepo, db)
			},
			service.NewResultsService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAuthController,
			adminctrl.NewSurveyController,
			adminctrl.NewQuestionController,
			publicctrl.NewSurveyController,
			publicctrl.NewResponseController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	// Wait for a shutdown signal
	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Custom logger using Zerolog for Gin
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return "" // Returning empty string to avoid double logging
	}))
	r.Use(gin.Recovery())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *adminctrl.AuthController,
	surveyCtrl *adminctrl.SurveyController,
	questionCtrl *adminctrl.QuestionController,
	publicSurveyCtrl *publicctrl.SurveyController,
	responseCtrl *publicctrl.ResponseController,
) {
	// Admin Routes (prefixed with /api/admin)
	// Login stays open; everything else sits behind the session cookie.
	adminAPIGroup := router.Group("/api/admin")
	adminAPIGroup.POST("/login", authCtrl.Login)

	protected := adminAPIGroup.Group("")
	protected.Use(middleware.AdminAuth(authService))
	{
		protected.POST("/logout", authCtrl.Logout)

		surveysAdminGroup := protected.Group("/surveys")
		surveysAdminGroup.GET("", surveyCtrl.ListSurveys)
		surveysAdminGroup.POST("", surveyCtrl.CreateSurvey)
		surveysAdminGroup.GET("/:id", surveyCtrl.GetSurvey)
		surveysAdminGroup.PUT("/:id", surveyCtrl.UpdateSurvey)
		surveysAdminGroup.DELETE("/:id", surveyCtrl.DeleteSurvey)

		surveysAdminGroup.POST("/:id/questions", questionCtrl.CreateQuestion)
		surveysAdminGroup.PUT("/:id/questions", questionCtrl.BulkUpdateQuestions)
		surveysAdminGroup.DELETE("/:id/questions", questionCtrl.DeleteQuestion)

		surveysAdminGroup.GET("/:id/results", surveyCtrl.GetResults)
		surveysAdminGroup.GET("/:id/results/export", surveyCtrl.ExportResultsCSV)
	}

	// Public Routes (prefixed with /api)
	publicAPIGroup := router.Group("/api")
	{
		publicAPIGroup.GET("/surveys", publicSurveyCtrl.ListSurveys)
		publicAPIGroup.GET("/surveys/:id", publicSurveyCtrl.GetSurvey)
		publicAPIGroup.POST("/surveys/responses", responseCtrl.SubmitResponses)
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Enquete API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Survey{},
		&model.Question{},
		&model.Option{},
		&model.Respondent{},
		&model.Response{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

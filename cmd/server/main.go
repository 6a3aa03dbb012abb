package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/interview-assistant/internal/agent"
	"github.com/fadilmartias/interview-assistant/internal/config"
	"github.com/fadilmartias/interview-assistant/internal/domain/fiber/handler"
	"github.com/fadilmartias/interview-assistant/internal/middleware"
	"github.com/fadilmartias/interview-assistant/internal/model"
	applogger "github.com/fadilmartias/interview-assistant/internal/pkg/logger"
	"github.com/fadilmartias/interview-assistant/internal/pkg/mailer"
	"github.com/fadilmartias/interview-assistant/internal/repository/implementation"
	"github.com/fadilmartias/interview-assistant/internal/service"
	"github.com/fadilmartias/interview-assistant/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	appLogger := applogger.NewZapLogger("logs/app.log", appConfig.Env == "production")
	defer appLogger.Sync()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env != "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	interviewerRepo := implementation.NewInterviewerRepository(db)
	interviewRepo := implementation.NewInterviewRepository(db)

	gemini, err := service.NewGeminiService(ctx)
	if err != nil {
		log.Fatal(err)
	}
	storage := service.NewStorageService()

	smtpConfig := config.LoadSMTPConfig()
	emailService := mailer.NewEmailService(
		smtpConfig.Host, smtpConfig.Port,
		smtpConfig.Username, smtpConfig.Password,
		smtpConfig.Sender, smtpConfig.SenderName,
	)

	questionGenerator := agent.NewQuestionGenerator(gemini, appLogger)
	answerEvaluator := agent.NewAnswerEvaluator(gemini, appLogger)
	summaryGenerator := agent.NewSummaryGenerator(gemini, appLogger)
	resumeParser := agent.NewResumeParser(gemini, appLogger)

	interviewUC := usecase.NewInterviewUsecase(
		interviewRepo,
		questionGenerator, answerEvaluator, summaryGenerator, resumeParser,
		storage, appLogger,
	)
	authUC := usecase.NewAuthUsecase(interviewerRepo, interviewRepo, emailService, appLogger)
	dashboardUC := usecase.NewDashboardUsecase(interviewRepo)

	handler.NewAuthHandler(authUC).RegisterRoutes(app)
	handler.NewDashboardHandler(dashboardUC, authUC).RegisterRoutes(app)
	handler.NewInterviewHandler(interviewUC).RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
		dbConfig.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.Interviewer{},
		&model.InterviewSession{},
		&model.InterviewQuestion{},
		&model.InterviewAnswer{},
		&model.ChatMessage{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}

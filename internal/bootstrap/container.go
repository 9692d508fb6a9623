package bootstrap

import (
	"context"
	"log"

	"github.com/RishavSingh2203/freaky-fit/internal/config"
	"github.com/RishavSingh2203/freaky-fit/internal/controller"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/logger"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/mailer"
	"github.com/RishavSingh2203/freaky-fit/internal/repository/unitofwork"
	"github.com/RishavSingh2203/freaky-fit/internal/service"
	"github.com/RishavSingh2203/freaky-fit/pkg/llm/gemini"
	"github.com/RishavSingh2203/freaky-fit/pkg/videosearch"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	UserController    controller.IUserController
	TrainerController controller.ITrainerController
	PlanController    controller.IPlanController
	SessionController controller.ISessionController
	AdminController   controller.IAdminController
	PaymentController controller.IPaymentController

	// Background workers, exposed for main.go to run
	ConsumerService *service.ConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(pubSub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, uowFactory, sysLogger, cfg.Keys.EventsTopic)

	// 3. AI Providers
	llmProvider, err := gemini.NewProvider(context.Background(), cfg.Keys.GoogleGemini, cfg.Ai.Model)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Gemini provider: %v", err)
	}
	log.Printf("[INFO] Using LLM: Gemini (%s)", cfg.Ai.Model)

	videoSearcher := videosearch.NewClient(cfg.Keys.Pexels)

	// 4. Services
	authService := service.NewAuthService(uowFactory, publisherService, emailService, sysLogger, cfg.Keys.EventsTopic)
	userService := service.NewUserService(uowFactory)
	trainerService := service.NewTrainerService(uowFactory)
	adminService := service.NewAdminService(uowFactory, sysLogger)
	subscriptionService := service.NewSubscriptionService(uowFactory, sysLogger)
	sessionService := service.NewSessionService(uowFactory, publisherService, emailService, sysLogger, cfg.Keys.EventsTopic)
	planService := service.NewPlanService(llmProvider, videoSearcher, publisherService, sysLogger, cfg.Keys.EventsTopic)
	paymentService := service.NewPaymentService(cfg.Midtrans, uowFactory, publisherService, sysLogger, cfg.Keys.EventsTopic)

	// 5. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		UserController:    controller.NewUserController(userService),
		TrainerController: controller.NewTrainerController(trainerService),
		PlanController:    controller.NewPlanController(planService, subscriptionService, sysLogger),
		SessionController: controller.NewSessionController(sessionService),
		AdminController:   controller.NewAdminController(adminService, sysLogger),
		PaymentController: controller.NewPaymentController(paymentService, subscriptionService, userService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}

// File: dialhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dialhub/config"
	"dialhub/database"
	calllogRepo "dialhub/database/repository/calllog"
	contactRepo "dialhub/database/repository/contact"
	scheduleRepo "dialhub/database/repository/schedule"
	userRepoPkg "dialhub/database/repository/user"
	"dialhub/handlers"
	"dialhub/middleware"
	"dialhub/routes"
	"dialhub/services/assistant"
	"dialhub/services/calllog"
	"dialhub/services/contact"
	"dialhub/services/dispatch"
	"dialhub/services/schedule"
	"dialhub/services/user"
	"dialhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	contRepo := contactRepo.NewMongoContactRepo()
	callRepo := calllogRepo.NewMongoCallLogRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	assistantService := &assistant.DefaultAssistantService{
		Client: assistant.NewProviderClient(config.AppConfig.ProviderAPIURL, config.AppConfig.ProviderAPIKey),
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}

	scheduleService := &schedule.DefaultService{
		Repo:      schedRepo,
		Directory: assistantService,
		Clock:     schedule.SystemClock,
	}

	contactService := &contact.DefaultContactService{
		Repo: contRepo,
	}

	callLogService := &calllog.DefaultCallLogService{
		Repo: callRepo,
	}

	// Dispatch worker and its enqueue side.
	dispatchWorker := &dispatch.Worker{
		Schedule:   scheduleService,
		Assistants: assistantService,
		Contacts:   contRepo,
		CallLogs:   callLogService,
		Logger:     logger,
	}
	dispatch.InitDispatchWorker(dispatchWorker)

	enqueuer := dispatch.NewEnqueuer()
	defer enqueuer.Close()

	// handlers.
	userHandler := handlers.NewUserHandler(userService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	contactHandler := handlers.NewContactHandler(contactService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	callLogHandler := handlers.NewCallLogHandler(callLogService)
	dispatchHandler := handlers.NewDispatchHandler(enqueuer)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
		GetMeHandler:            userHandler.GetMeHandler,
		RevokeAuthTokenHandler:  userHandler.RevokeAuthTokenHandler,
		UpdatePasswordHandler:   userHandler.UpdatePasswordHandler,

		// Schedule endpoints.
		GetScheduleHandler:     scheduleHandler.GetScheduleHandler,
		SaveScheduleHandler:    scheduleHandler.SaveScheduleHandler,
		CurrentScheduleHandler: scheduleHandler.CurrentScheduleHandler,

		// Contact endpoints.
		ListContactsHandler:  contactHandler.ListContactsHandler,
		CreateContactHandler: contactHandler.CreateContactHandler,
		GetContactHandler:    contactHandler.GetContactHandler,
		UpdateContactHandler: contactHandler.UpdateContactHandler,
		DeleteContactHandler: contactHandler.DeleteContactHandler,

		// Assistant endpoints.
		ListAssistantsHandler:   assistantHandler.ListAssistantsHandler,
		CreateAssistantHandler:  assistantHandler.CreateAssistantHandler,
		DeleteAssistantHandler:  assistantHandler.DeleteAssistantHandler,
		ListPhoneNumbersHandler: assistantHandler.ListPhoneNumbersHandler,

		// Call log endpoints.
		ListCallsHandler:     callLogHandler.ListCallsHandler,
		AppendCallHandler:    callLogHandler.AppendCallHandler,
		CallAnalyticsHandler: callLogHandler.CallAnalyticsHandler,

		// Dispatch endpoints.
		RunDispatchHandler: dispatchHandler.RunDispatchHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic health snapshot for /health.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

package app

import (
	"bank-admin-api/config"
	"bank-admin-api/db"
	"bank-admin-api/handler"
	"bank-admin-api/logger"
	"bank-admin-api/repository"
	"bank-admin-api/router"
	"bank-admin-api/service"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// Repositories over the shared database handle.
	userRepo := repository.NewUserRepository(database)
	accountRepo := repository.NewAccountRepository(database)
	cardRepo := repository.NewCardRepository(database)

	// Services. The user service delegates per-account cascade steps to the
	// account service so both delete paths share one implementation.
	accountService := service.NewAccountService(database, accountRepo, cardRepo, redisClient)
	cardService := service.NewCardService(database, cardRepo)
	userService := service.NewUserService(database, userRepo, accountRepo, accountService, service.StaticExchangeRates{})

	userHandler := handler.NewUserHandler(userService)
	accountHandler := handler.NewAccountHandler(accountService)
	cardHandler := handler.NewCardHandler(cardService)

	r := router.NewRouter(userHandler, accountHandler, cardHandler)

	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

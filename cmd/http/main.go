package main

import (
	"context"
	"log"
	"medirecord-service/internal/app/config"
	"medirecord-service/internal/app/delivery/http/middlewares"
	"medirecord-service/internal/app/delivery/http/routers"
	"medirecord-service/internal/app/drivers/database"
	"medirecord-service/internal/app/drivers/logger"
	"medirecord-service/internal/app/services/analytics"
	"medirecord-service/internal/app/services/auth"
	"medirecord-service/internal/app/services/patients"
	"medirecord-service/internal/app/services/shared/jwtmanager"
	"medirecord-service/internal/app/services/shared/redis"
	"medirecord-service/internal/app/services/users"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer func() { _ = zapLogger.Sync() }()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server starting", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zapLogger.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	cacheTTL := time.Duration(bootstrap.InternalConfig.App.AnalyticsCacheTTLInSeconds) * time.Second

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	jwtManager := jwtmanager.NewJWTManager(
		bootstrap.InternalConfig.JWT.Secret,
		time.Duration(bootstrap.InternalConfig.JWT.ExpTimeInHour)*time.Hour,
	)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(jwtManager, bootstrap.InternalConfig, bootstrap.Logger)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	userUsecase := users.NewUserUsecase(userMongoRepository)
	userController := users.NewUserController(userUsecase, requestTimeout, bootstrap.Logger)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, redisRepository, bootstrap.Logger)
	patientController := patients.NewPatientController(patientUsecase, requestTimeout, bootstrap.Logger)

	indexCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	if err := patientMongoRepository.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to ensure patient indexes: %v", err)
	}

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, jwtManager)
	authController := auth.NewAuthController(authUsecase, requestTimeout, bootstrap.Logger)

	// Analytics
	analyticsUsecase := analytics.NewAnalyticsUsecase(patientMongoRepository, redisRepository, cacheTTL, bootstrap.Logger)
	analyticsController := analytics.NewAnalyticsController(analyticsUsecase, requestTimeout, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		userController,
		analyticsController,
	)
}

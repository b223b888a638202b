package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"pacientes-service/internal/app/config"
	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/app/delivery/http/controllers"
	"pacientes-service/internal/app/delivery/http/middlewares"
	"pacientes-service/internal/app/delivery/http/routers"
	"pacientes-service/internal/app/drivers/database"
	"pacientes-service/internal/app/drivers/logger"
	minioDriver "pacientes-service/internal/app/drivers/storage"
	"pacientes-service/internal/app/services/core/patients"
	"pacientes-service/internal/app/services/core/uploads"
	redisRepo "pacientes-service/internal/app/services/shared/redis"
	"pacientes-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	bootstrap, err := openDrivers(context.Background(), driverConfig, internalConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("Error initializing drivers", zap.Error(err))
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

// openDrivers connects MongoDB and, when enabled, Redis and MinIO.
func openDrivers(ctx context.Context, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, zapLogger *zap.Logger) (*config.Bootstrap, error) {
	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	mongoClient, err := database.NewMongoDB(ctx, driverConfig, zapLogger)
	if err != nil {
		return nil, err
	}
	bootstrap.MongoClient = mongoClient
	bootstrap.MongoDB = mongoClient.Database(driverConfig.MongoDB.DbName)

	if driverConfig.Redis.Enabled {
		redisClient, err := database.NewRedisClient(ctx, driverConfig, zapLogger)
		if err != nil {
			bootstrap.Shutdown(ctx)
			return nil, err
		}
		bootstrap.Redis = redisClient
	}

	if internalConfig.Upload.Backend == config.UploadBackendMinio {
		minioClient, err := minioDriver.NewMinio(driverConfig, zapLogger)
		if err != nil {
			bootstrap.Shutdown(ctx)
			return nil, err
		}
		err = storage.EnsureMinioBucket(ctx, minioClient, driverConfig.Minio.BucketName)
		if err != nil {
			bootstrap.Shutdown(ctx)
			return nil, err
		}
		bootstrap.Minio = minioClient
	}

	return bootstrap, nil
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Redis
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redisRepo.NewRedisRepository(bootstrap.Redis)
	}

	// File storage
	var fileStorage contracts.FileStorage
	switch bootstrap.InternalConfig.Upload.Backend {
	case config.UploadBackendLocal:
		fileStorage = storage.NewLocalStorage(bootstrap.InternalConfig.Upload.Dir, bootstrap.Logger)
	case config.UploadBackendMinio:
		fileStorage = storage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName, bootstrap.Logger)
	default:
		return fmt.Errorf("unknown upload backend %q", bootstrap.InternalConfig.Upload.Backend)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(
		patientMongoRepository,
		redisRepository,
		bootstrap.InternalConfig.Cache.PatientTTL(),
		bootstrap.Logger,
	)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)

	// Upload
	uploadUsecase := uploads.NewUploadUsecase(fileStorage, bootstrap.Logger)
	uploadController := controllers.NewUploadController(bootstrap.Logger, uploadUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, patientController, uploadController)
	return nil
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"telemed-service/internal/app/config"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/delivery/http/controllers"
	"telemed-service/internal/app/delivery/http/middlewares"
	"telemed-service/internal/app/delivery/http/routers"
	"telemed-service/internal/app/drivers/database"
	"telemed-service/internal/app/drivers/logger"
	"telemed-service/internal/app/drivers/messaging"
	"telemed-service/internal/app/drivers/storage"
	"telemed-service/internal/app/services/core/appointments"
	"telemed-service/internal/app/services/core/chat"
	"telemed-service/internal/app/services/core/doctors"
	"telemed-service/internal/app/services/core/users"
	"telemed-service/internal/app/services/core/video"
	"telemed-service/internal/app/services/shared/calendar"
	"telemed-service/internal/app/services/shared/eventqueue"
	"telemed-service/internal/app/services/shared/jwtmanager"
	"telemed-service/internal/app/services/shared/redis"
	sharedStorage "telemed-service/internal/app/services/shared/storage"
	"telemed-service/internal/app/services/shared/tokenstore"
	"telemed-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.Calendar.Timezone)
	if err != nil {
		log.Fatalf("Error loading calendar timezone %q: %v", internalConfig.Calendar.Timezone, err)
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	switch internalConfig.Calendar.TokenStore {
	case constvars.CalendarTokenStoreRedis:
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	case constvars.CalendarTokenStoreMinio:
		bootstrap.Minio = storage.NewMinio(driverConfig)
	}

	err = bootstrapingTheApp(bootstrap, location)
	if err != nil {
		log.Fatalf("Error bootstrapping the app: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, location *time.Location) error {
	internalConfig := bootstrap.InternalConfig
	requestTimeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Calendar token store
	backends := tokenstore.Backends{
		FilePath:   internalConfig.Calendar.TokenFile,
		RedisKey:   internalConfig.Calendar.TokenRedisKey,
		BucketName: internalConfig.Minio.BucketName,
		ObjectName: internalConfig.Calendar.TokenObject,
	}
	if bootstrap.Redis != nil {
		backends.RedisRepository = redis.NewRedisRepository(bootstrap.Redis)
	}
	if bootstrap.Minio != nil {
		backends.Storage = sharedStorage.NewMinioStorage(bootstrap.Minio)
	}
	tokenStore, err := tokenstore.New(internalConfig.Calendar.TokenStore, backends)
	if err != nil {
		return err
	}

	// Calendar
	oauthConfig, err := calendar.NewOAuthConfigFromFile(internalConfig.Calendar.CredentialsFile)
	if err != nil {
		return err
	}
	credentialProvider := calendar.NewCredentialProvider(oauthConfig, tokenStore, bootstrap.Logger)
	calendarService := calendar.NewGoogleCalendarService(
		credentialProvider,
		internalConfig.Calendar.CalendarID,
		location,
		internalConfig.Calendar.BaseURL,
		bootstrap.Logger,
	)

	// Appointment events
	var eventPublisher contracts.AppointmentEventPublisher
	if bootstrap.RabbitMQ != nil {
		eventPublisher, err = eventqueue.NewAppointmentEventPublisher(bootstrap.RabbitMQ, bootstrap.Logger, internalConfig.RabbitMQ.AppointmentQueue)
		if err != nil {
			return err
		}
	}

	// Auth
	tokenVerifier, err := jwtmanager.NewJWTManager(jwtmanager.OptionsFromConfig(internalConfig), bootstrap.Logger)
	if err != nil {
		return err
	}
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, tokenVerifier, internalConfig)

	// Appointment
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, calendarService, eventPublisher, location, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, requestTimeout)

	// User
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	userUsecase := users.NewUserUsecase(userRepository, bootstrap.Logger)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase, requestTimeout)

	// Doctor, video, auth profile
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctors.NewDoctorUsecase(bootstrap.Logger))
	videoController := controllers.NewVideoController(bootstrap.Logger, video.NewVideoUsecase(bootstrap.Logger))
	authController := controllers.NewAuthController(bootstrap.Logger)

	// Chat
	chatUsecase := chat.NewChatUsecase(chat.OptionsFromConfig(internalConfig), bootstrap.Logger)
	chatController := controllers.NewChatController(
		bootstrap.Logger,
		chatUsecase,
		routers.ParseAllowedOrigins(internalConfig.App.AllowedOrigins),
		internalConfig.Chat.MaxMessageSizeInBytes,
	)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		appointmentController,
		userController,
		doctorController,
		videoController,
		authController,
		chatController,
	)
	return nil
}

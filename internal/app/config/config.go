package config

import (
	"telemed-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:      utils.GetEnvString("MONGODB_URI", ""),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "telemedicine"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", ""),
			Password:   utils.GetEnvString("MINIO_PASSWORD", ""),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "telemed"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8000"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", ""),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 20),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		Auth0: AppAuth0{
			Domain:                 utils.GetEnvString("AUTH0_DOMAIN", ""),
			APIAudience:            utils.GetEnvString("AUTH0_API_AUDIENCE", ""),
			Algorithms:             utils.GetEnvString("AUTH0_ALGORITHMS", "RS256"),
			PublicKeyPEM:           utils.GetEnvString("AUTH0_PUBLIC_KEY_PEM", ""),
			JWKSCacheTTLInMinutes:  utils.GetEnvInt("AUTH0_JWKS_CACHE_TTL_IN_MINUTES", 10),
			JWKSFetchTimeoutInSecs: utils.GetEnvInt("AUTH0_JWKS_FETCH_TIMEOUT_IN_SECONDS", 5),
		},
		Calendar: AppCalendar{
			CalendarID:      utils.GetEnvString("CALENDAR_ID", "primary"),
			Timezone:        utils.GetEnvString("CALENDAR_TIMEZONE", "Asia/Kolkata"),
			CredentialsFile: utils.GetEnvString("CALENDAR_CREDENTIALS_FILE", "credentials.json"),
			TokenStore:      utils.GetEnvString("CALENDAR_TOKEN_STORE", "file"),
			TokenFile:       utils.GetEnvString("CALENDAR_TOKEN_FILE", "token.json"),
			TokenRedisKey:   utils.GetEnvString("CALENDAR_TOKEN_REDIS_KEY", "calendar:token"),
			TokenObject:     utils.GetEnvString("CALENDAR_TOKEN_OBJECT", "calendar/token.json"),
			BaseURL:         utils.GetEnvString("CALENDAR_BASE_URL", ""),
		},
		Chat: AppChat{
			IdleTimeoutInSeconds:  utils.GetEnvInt("CHAT_IDLE_TIMEOUT_IN_SECONDS", 300),
			MaxMessageSizeInBytes: utils.GetEnvInt("CHAT_MAX_MESSAGE_SIZE_IN_BYTES", 4096),
			MaxMessagesPerSecond:  utils.GetEnvInt("CHAT_MAX_MESSAGES_PER_SECOND", 5),
		},
		RabbitMQ: AppRabbitMQ{
			AppointmentQueue: utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_QUEUE", "appointment_events"),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "telemed"),
		},
	}
}

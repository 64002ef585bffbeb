package config

import (
	"esveikata-finder/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", ""),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                           utils.GetEnvString("APP_ENV", "development"),
			Port:                          utils.GetEnvString("APP_PORT", ":8080"),
			Version:                       utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                      utils.GetEnvString("APP_TIMEZONE", "Europe/Vilnius"),
			EndpointPrefix:                utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                   utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds:      utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:       utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
			MinQueryLength:                utils.GetEnvInt("APP_MIN_QUERY_LENGTH", 3),
			SearchFrequencyInMinutes:      utils.GetEnvInt("APP_SEARCH_FREQUENCY_IN_MINUTES", 5),
			SearchWindowMonths:            utils.GetEnvInt("APP_SEARCH_WINDOW_MONTHS", 6),
			SlotPageSize:                  utils.GetEnvInt("APP_SLOT_PAGE_SIZE", 50),
			DirectoryCacheTTLInMinutes:    utils.GetEnvInt("APP_DIRECTORY_CACHE_TTL_IN_MINUTES", 60),
			SessionIdleTimeoutInMinutes:   utils.GetEnvInt("APP_SESSION_IDLE_TIMEOUT_IN_MINUTES", 60),
			SessionJanitorIntervalSeconds: utils.GetEnvInt("APP_SESSION_JANITOR_INTERVAL_SECONDS", 60),
		},
		Esveikata: Esveikata{
			BaseUrl:                 utils.GetEnvString("ESVEIKATA_BASE_URL", "https://ipr.esveikata.lt"),
			RequestTimeoutInSeconds: utils.GetEnvInt("ESVEIKATA_REQUEST_TIMEOUT_IN_SECONDS", 20),
			MaxRequestsPerSecond:    utils.GetEnvFloat("ESVEIKATA_MAX_REQUESTS_PER_SECOND", 5),
			UserAgent:               utils.GetEnvString("ESVEIKATA_USER_AGENT", "esveikata-finder/1.0"),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "esveikata.slots.available"),
		},
	}
}

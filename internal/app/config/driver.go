package config

type (
	DriverConfig struct {
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}
	// Redis is optional; an empty Host disables the directory cache.
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	// RabbitMQ is optional; an empty Host disables slot notifications.
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
)

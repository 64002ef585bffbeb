package config

type InternalConfig struct {
	App       App         `mapstructure:"app"`
	Esveikata Esveikata   `mapstructure:"esveikata"`
	RabbitMQ  AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                           string `mapstructure:"env"`
	Port                          string `mapstructure:"port"`
	Version                       string `mapstructure:"version"`
	Timezone                      string `mapstructure:"timezone"`
	EndpointPrefix                string `mapstructure:"endpoint_prefix"`
	MaxRequests                   int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds      int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds       int    `mapstructure:"request_timeout_in_seconds"`
	MinQueryLength                int    `mapstructure:"min_query_length"`
	SearchFrequencyInMinutes      int    `mapstructure:"search_frequency_in_minutes"`
	SearchWindowMonths            int    `mapstructure:"search_window_months"`
	SlotPageSize                  int    `mapstructure:"slot_page_size"`
	DirectoryCacheTTLInMinutes    int    `mapstructure:"directory_cache_ttl_in_minutes"`
	SessionIdleTimeoutInMinutes   int    `mapstructure:"session_idle_timeout_in_minutes"`
	SessionJanitorIntervalSeconds int    `mapstructure:"session_janitor_interval_seconds"`
}

// Esveikata holds settings for the remote booking portal.
type Esveikata struct {
	BaseUrl                 string  `mapstructure:"base_url"`
	RequestTimeoutInSeconds int     `mapstructure:"request_timeout_in_seconds"`
	MaxRequestsPerSecond    float64 `mapstructure:"max_requests_per_second"`
	UserAgent               string  `mapstructure:"user_agent"`
}

type AppRabbitMQ struct {
	NotificationQueue string `mapstructure:"notification_queue"`
}

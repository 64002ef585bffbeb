package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingRedisKey          = "redis_key"
	LoggingResourceKey       = "resource"
	LoggingURLKey            = "url"
	LoggingSessionIDKey      = "session_id"
	LoggingSpecialistIDKey   = "specialist_id"
	LoggingSpecialistCount   = "specialist_count"
	LoggingInstitutionCount  = "institution_count"
	LoggingSlotCountKey      = "slot_count"
	LoggingGenerationKey     = "generation"
	LoggingSearchQueryKey    = "search_query"
	LoggingLeftBoundKey      = "left_bound"
	LoggingRightBoundKey     = "right_bound"
	LoggingMunicipalityIDKey = "municipality_id"
	LoggingPeriodKey         = "period"
	LoggingQueueKey          = "queue"
	LoggingErrorTypeKey      = "error_type"
	LoggingStaleKey          = "stale"
)

package constvars

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientSessionNotFound               = "finder session not found or expired"
	ErrClientSpecialistNotFound            = "specialist is not in the current search list"
	ErrClientNoSpecialistSelected          = "select a specialist first"
	ErrClientRemoteServiceUnavailable      = "the booking portal is not responding, try again later"
)

const (
	ErrDevValidationFailed       = "request validation failed"
	ErrDevInvalidRequestPayload  = "invalid request payload"
	ErrDevCannotMarshalJSON      = "failed to marshal JSON"
	ErrDevCannotUnmarshalJSON    = "failed to unmarshal JSON"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevRemoteUnexpectedStatus = "esveikata responded with unexpected status %d for %s"
	ErrDevDecodeRemoteResponse   = "failed to decode esveikata %s response"
	ErrDevOutboundRateLimit      = "outbound rate limiter wait failed"
	ErrDevRedisGetData           = "failed to get data from redis"
	ErrDevRedisSetData           = "failed to set data to redis"
	ErrDevRedisDeleteData        = "failed to delete data from redis"
	ErrDevSessionNotFound        = "finder session %s not found"
	ErrDevSpecialistNotFound     = "specialist %s not present in filtered list"
	ErrDevNoSpecialistSelected   = "timed search toggled without a selected specialist"
	ErrDevScheduleJob            = "failed to schedule periodic job"
	ErrDevPublishMessage         = "failed to publish message to queue %s"
	ErrDevInvalidPeriod          = "period must be at least one second, got %s"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"uuid":         "must be a valid UUID",
	"search_query": "must not contain control characters",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}

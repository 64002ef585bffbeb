package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceSpecialists     = "specialists"
	ResourceInstitutions    = "institutions"
	ResourceAppointmentSlot = "appointment slots"
	ResourceSession         = "session"
)

const (
	URLParamSessionID = "sessionID"
	QueryParamQuery   = "query"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	MetricsNamespace = "esveikata_finder"
	MetricsPath      = "/metrics"
)

const (
	// Outcome labels for lookup metrics.
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeFailure = "failure"
	OutcomeStale   = "stale"
)
const ResponseUnknown = "unknown"

package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldBoatID          = "boat-id"
	FieldCacheKey        = "cache-key"
	FieldCandidates      = "candidates"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldMatchPolicy     = "match-policy"
	FieldOverallScore    = "overall-score"
	FieldPreset          = "preset"
	FieldRequestBody     = "request-body"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)

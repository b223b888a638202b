package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingErrorTypeKey   = "error_type"
	LoggingValidationKey  = "validation_errors"
	LoggingPatientIDKey   = "patient_id"
	LoggingPatientCount   = "patient_count"
	LoggingFilterKey      = "filter"
	LoggingFieldsKey      = "fields"
	LoggingCacheKey       = "cache_key"
	LoggingFileNameKey    = "file_name"
	LoggingFileSizeKey    = "file_size"
	LoggingContentTypeKey = "content_type"
	LoggingBucketNameKey  = "bucket_name"
)

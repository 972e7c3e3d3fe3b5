package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"url":           "must be a valid URL",
	"iso_timestamp": "must be a valid ISO-8601 timestamp",
	"not_blank":     "must not be blank",
	"gt":            "must be greater than %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"gt":  true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "the server took too long to respond, please try again later"
	ErrClientNotAuthorized                 = "you are not authorized to access this resource"
	ErrClientInvalidToken                  = "invalid token"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientStorageUnavailable            = "storage is temporarily unavailable, please retry"
	ErrClientMeetingCreationFailed         = "appointment booked but the meeting link could not be created, retry the meeting step"
	ErrClientCalendarUnavailable           = "calendar provider is unavailable"
	ErrClientTooManyRequests               = "too many requests on single time-frame"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevValidationFailed            = "validation failed"
	ErrDevCannotParseJSON             = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON           = "failed to marshal JSON"
	ErrDevServerDeadlineExceeded      = "server deadline exceeded"
	ErrDevServerProcess               = "server failed to process the request"
	ErrDevTooManyRequests             = "request rate limit exceeded"
	ErrDevMissingRequestID            = "request ID missing from context"
	ErrDevURLParamIDValidationFailed  = "URL param '%s' validation failed"
	ErrDevAuthTokenMissing            = "bearer token missing from Authorization header"
	ErrDevAuthTokenMalformed          = "Authorization header is not a bearer token"
	ErrDevAuthTokenInvalidOrExpired   = "token invalid or expired"
	ErrDevAuthSigningKeyNotFound      = "no signing key matches token kid '%s'"
	ErrDevAuthFetchSigningKeys        = "failed to fetch identity provider signing keys"
	ErrDevDBFailedToFindDocument      = "failed to find document in mongo database"
	ErrDevDBFailedToInsertDocument    = "failed to insert document into mongo database"
	ErrDevDBFailedToUpdateDocument    = "failed to update document in mongo database"
	ErrDevDBFailedToIterateDocuments  = "failed to iterate documents in mongo database"
	ErrDevDBStringNotObjectID         = "string '%s' is not a valid object ID"
	ErrDevDBStorageUnavailable        = "mongo database unreachable"
	ErrDevDBDocumentNotFound          = "document '%s' not found"
	ErrDevRedisGetData                = "failed to get data from redis"
	ErrDevRedisSetData                = "failed to set data to redis"
	ErrDevRedisDeleteData             = "failed to delete data from redis"
	ErrDevMinioFailedToPutObject      = "failed to put object into bucket '%s'"
	ErrDevMinioFailedToGetObject      = "failed to get object from bucket '%s'"
	ErrDevRabbitMQPublishMessage      = "failed to publish message to queue '%s'"
	ErrDevCalendarInvalidEvent        = "invalid calendar event"
	ErrDevCalendarAuthorizationNeeded = "calendar authorization required, run calendar-auth to seed a token"
	ErrDevCalendarTokenRefresh        = "failed to refresh calendar token"
	ErrDevCalendarTokenStore          = "calendar token store failure"
	ErrDevMeetingCreationFailed       = "meeting creation failed for appointment '%s'"
)

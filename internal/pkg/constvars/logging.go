package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"

	LoggingAppointmentIDKey = "appointment_id"
	LoggingMeetingLinkKey   = "meeting_link"
	LoggingStartTimeKey     = "start_time"
	LoggingEndTimeKey       = "end_time"
	LoggingAttendeesKey     = "attendees_count"
	LoggingCalendarIDKey    = "calendar_id"
	LoggingTokenStoreKey    = "token_store"
	LoggingTokenExpiryKey   = "token_expiry"
	LoggingUserIDKey        = "user_id"
	LoggingRoomIDKey        = "room_id"
	LoggingQueueNameKey     = "queue_name"
	LoggingEventTypeKey     = "event_type"
	LoggingSubjectKey       = "subject"
	LoggingKeyIDKey         = "kid"
)

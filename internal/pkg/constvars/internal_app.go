package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_AUTH_CLAIMS_KEY          ContextKey = "auth_claims"
)

const (
	REQUEST_ID_PREFIX = "TLMD_SVC_"
)

const (
	MongoCollectionAppointments = "appointments"
	MongoCollectionUsers        = "users"
)

const (
	ResourceAppointments = "appointments"
	ResourceUsers        = "users"
	ResourceDoctors      = "doctors"
	ResourceVideo        = "video"
	ResourceAuth         = "auth"
	ResourceChat         = "chat"
)

const (
	URLParamAppointmentID = "appointmentID"
	URLParamRoomID        = "roomID"
)

const (
	// Appointments booked through the meeting flow always last one hour.
	AppointmentMeetingDuration = 60 // minutes
	AppointmentMeetingSummary  = "Consultation: %s with %s"

	UserListLimit = 100
)

const (
	CalendarConferenceSolutionHangoutsMeet = "hangoutsMeet"
	CalendarEntryPointVideo                = "video"
	CalendarEventsScope                    = "https://www.googleapis.com/auth/calendar.events"
)

const (
	CalendarTokenStoreFile  = "file"
	CalendarTokenStoreRedis = "redis"
	CalendarTokenStoreMinio = "minio"
)

const (
	ChatConnectedMessageFormat = "Connected to chat room: %s"
	ChatEchoPrefix             = "You said: "
)

const (
	VideoDefaultRoomID      = "room123"
	VideoDefaultDoctorName  = "Unknown"
	HomeRunningMessage      = "Backend running successfully"
	AppointmentEventCreated = "appointment.created"
	AppointmentEventMeeting = "appointment.meeting_attached"
)

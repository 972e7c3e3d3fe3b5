package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Appointment messages
	CreateAppointmentSuccessMessage            = "Appointment created successfully"
	CreateAppointmentWithMeetingSuccessMessage = "Appointment with Google Meet created successfully"
	AttachMeetingSuccessMessage                = "Google Meet attached to appointment successfully"
	GetAppointmentSuccessMessage               = "get appointment successfully"

	// User messages
	CreateUserSuccessMessage = "user created successfully"
	GetUsersSuccessMessage   = "get users successfully"

	// Doctor messages
	GetDoctorsSuccessMessage = "get doctors successfully"
	ConsultSuccessMessage    = "consultation requested successfully"

	// Video messages
	StartVideoCallSuccessMessage = "video call started successfully"

	// Auth messages
	GetProfileSuccessMessage = "get profile successfully"
)

package responses

import "time"

type Appointment struct {
	ID          string     `json:"id"`
	PatientName string     `json:"patientName"`
	DoctorName  string     `json:"doctorName"`
	ScheduledAt time.Time  `json:"scheduledAt"`
	Reason      string     `json:"reason,omitempty"`
	Attendees   []string   `json:"attendees,omitempty"`
	MeetingLink string     `json:"meetingLink,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type AppointmentCreated struct {
	Success     bool         `json:"success"`
	ID          string       `json:"id"`
	MeetingLink string       `json:"meetingLink,omitempty"`
	Message     string       `json:"message"`
	Data        *Appointment `json:"data,omitempty"`
}

// MeetingCreationFailed is the body returned when the booking exists but its
// meeting link could not be created.
type MeetingCreationFailed struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

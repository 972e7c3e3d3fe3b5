package requests

import "time"

type AppointmentEvent struct {
	Type          string    `json:"type"`
	AppointmentID string    `json:"appointmentId"`
	PatientName   string    `json:"patientName"`
	DoctorName    string    `json:"doctorName"`
	ScheduledAt   time.Time `json:"scheduledAt"`
	MeetingLink   string    `json:"meetingLink,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

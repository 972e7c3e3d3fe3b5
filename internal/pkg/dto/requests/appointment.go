package requests

type CreateAppointment struct {
	PatientName string   `json:"patientName" validate:"required,not_blank,max=200"`
	DoctorName  string   `json:"doctorName" validate:"required,not_blank,max=200"`
	ScheduledAt string   `json:"scheduledAt" validate:"required,iso_timestamp"`
	Reason      string   `json:"reason" validate:"max=2000"`
	Attendees   []string `json:"attendees" validate:"omitempty,max=50,dive,email"`
}

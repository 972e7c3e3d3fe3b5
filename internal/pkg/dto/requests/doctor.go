package requests

type Consultation struct {
	DoctorID    int    `json:"doctorId" validate:"required,gt=0"`
	PatientName string `json:"patientName" validate:"required,not_blank,max=200"`
	Message     string `json:"message" validate:"max=2000"`
}

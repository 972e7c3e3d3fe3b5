package models

import (
	"telemed-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PatientName string             `bson:"patientName"`
	DoctorName  string             `bson:"doctorName"`
	ScheduledAt time.Time          `bson:"scheduledAt"`
	Reason      string             `bson:"reason,omitempty"`
	Attendees   []string           `bson:"attendees,omitempty"`
	MeetingLink string             `bson:"meetingLink,omitempty"`
	TimeModel   `bson:",inline"`
}

// MeetingWindow is the calendar slot derived from the booking time.
func (a *Appointment) MeetingWindow(duration time.Duration) (start, end time.Time) {
	return a.ScheduledAt, a.ScheduledAt.Add(duration)
}

func (a *Appointment) ConvertToResponse() *responses.Appointment {
	return &responses.Appointment{
		ID:          a.ID.Hex(),
		PatientName: a.PatientName,
		DoctorName:  a.DoctorName,
		ScheduledAt: a.ScheduledAt,
		Reason:      a.Reason,
		Attendees:   a.Attendees,
		MeetingLink: a.MeetingLink,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

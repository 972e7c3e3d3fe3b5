package exceptions

import (
	"fmt"
	"telemed-service/internal/pkg/constvars"
)

// MeetingCreationFailed reports a booking that was persisted while the
// conferencing step failed. AppointmentID always refers to a stored record.
type MeetingCreationFailed struct {
	AppointmentID string
	Cause         error
}

func NewMeetingCreationFailed(appointmentID string, cause error) *MeetingCreationFailed {
	return &MeetingCreationFailed{
		AppointmentID: appointmentID,
		Cause:         cause,
	}
}

func (e *MeetingCreationFailed) Error() string {
	message := fmt.Sprintf(constvars.ErrDevMeetingCreationFailed, e.AppointmentID)
	if e.Cause != nil {
		return message + ": " + e.Cause.Error()
	}
	return message
}

func (e *MeetingCreationFailed) Unwrap() error {
	return e.Cause
}

package utils

import (
	"strings"
	"telemed-service/internal/pkg/dto/requests"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		sanitizedArray = append(sanitizedArray, trimmed)
	}
	return sanitizedArray
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.DoctorName = strings.TrimSpace(input.DoctorName)
	input.ScheduledAt = strings.TrimSpace(input.ScheduledAt)
	input.Reason = strings.TrimSpace(input.Reason)
	if input.Attendees != nil {
		attendees := cleanWhiteSpaceFromEachStringOfAnArray(input.Attendees)
		for i, email := range attendees {
			attendees[i] = strings.ToLower(email)
		}
		input.Attendees = attendees
	}
}

func SanitizeConsultationRequest(input *requests.Consultation) {
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.Message = strings.TrimSpace(input.Message)
}

func SanitizeStartVideoCallRequest(input *requests.StartVideoCall) {
	input.Doctor = strings.TrimSpace(input.Doctor)
	input.Patient = strings.TrimSpace(input.Patient)
}

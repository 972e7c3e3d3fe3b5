package contracts

import (
	"context"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	CreateAppointmentWithMeeting(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error)
	AttachMeeting(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	FindAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error)
}

type AppointmentRepository interface {
	Insert(ctx context.Context, appointment *models.Appointment) (string, error)
	UpdateMeetingLink(ctx context.Context, appointmentID, meetingLink string) error
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
}

type AppointmentEventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *requests.AppointmentEvent) error
}

package appointments

import (
	"context"
	"fmt"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/app/models"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	CalendarService       contracts.CalendarService
	// EventPublisher is nil when RabbitMQ is disabled.
	EventPublisher contracts.AppointmentEventPublisher
	Location       *time.Location
	Log            *zap.Logger
	now            func() time.Time
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	calendarService contracts.CalendarService,
	eventPublisher contracts.AppointmentEventPublisher,
	location *time.Location,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	if location == nil {
		location = time.UTC
	}
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		CalendarService:       calendarService,
		EventPublisher:        eventPublisher,
		Location:              location,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointment, err := uc.book(ctx, request)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
	)
	return appointment.ConvertToResponse(), nil
}

// CreateAppointmentWithMeeting keeps the booking when the meeting step
// fails; the returned MeetingCreationFailed carries the stored id.
func (uc *appointmentUsecase) CreateAppointmentWithMeeting(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointmentWithMeeting called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointment, err := uc.book(ctx, request)
	if err != nil {
		return nil, err
	}

	return uc.attachMeeting(ctx, appointment)
}

func (uc *appointmentUsecase) AttachMeeting(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("appointmentUsecase.AttachMeeting called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	return uc.attachMeeting(ctx, appointment)
}

func (uc *appointmentUsecase) FindAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("appointmentUsecase.FindAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	return appointment.ConvertToResponse(), nil
}

func (uc *appointmentUsecase) book(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	appointment, err := uc.buildAppointment(request)
	if err != nil {
		return nil, err
	}

	_, err = uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.book error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publish(ctx, constvars.AppointmentEventCreated, appointment)
	return appointment, nil
}

func (uc *appointmentUsecase) buildAppointment(request *requests.CreateAppointment) (*models.Appointment, error) {
	if request == nil {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("request body is required"))
	}

	utils.SanitizeCreateAppointmentRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	scheduledAt, err := utils.ParseISOTimestamp(request.ScheduledAt, uc.Location)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	return &models.Appointment{
		PatientName: request.PatientName,
		DoctorName:  request.DoctorName,
		ScheduledAt: scheduledAt,
		Reason:      request.Reason,
		Attendees:   request.Attendees,
		TimeModel: models.TimeModel{
			CreatedAt: uc.now().UTC(),
		},
	}, nil
}

func (uc *appointmentUsecase) attachMeeting(ctx context.Context, appointment *models.Appointment) (*responses.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	appointmentID := appointment.ID.Hex()

	startTime, endTime := appointment.MeetingWindow(constvars.AppointmentMeetingDuration * time.Minute)
	summary := fmt.Sprintf(constvars.AppointmentMeetingSummary, appointment.PatientName, appointment.DoctorName)
	attendees := appointment.Attendees
	if attendees == nil {
		attendees = []string{}
	}

	meetingLink, err := uc.CalendarService.CreateMeetingEvent(ctx, summary, startTime, endTime, attendees)
	if err != nil {
		uc.Log.Error("appointmentUsecase.attachMeeting error creating meeting event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, exceptions.NewMeetingCreationFailed(appointmentID, err)
	}

	err = uc.AppointmentRepository.UpdateMeetingLink(ctx, appointmentID, meetingLink)
	if err != nil {
		uc.Log.Error("appointmentUsecase.attachMeeting error storing meeting link",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingMeetingLinkKey, meetingLink),
			zap.Error(err),
		)
		return nil, exceptions.NewMeetingCreationFailed(appointmentID, err)
	}

	updatedAt := uc.now().UTC()
	appointment.MeetingLink = meetingLink
	appointment.UpdatedAt = &updatedAt

	uc.Log.Info("appointmentUsecase.attachMeeting succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingMeetingLinkKey, meetingLink),
	)

	uc.publish(ctx, constvars.AppointmentEventMeeting, appointment)
	return appointment.ConvertToResponse(), nil
}

// publish never changes the outcome of the request.
func (uc *appointmentUsecase) publish(ctx context.Context, eventType string, appointment *models.Appointment) {
	if uc.EventPublisher == nil {
		return
	}

	event := &requests.AppointmentEvent{
		Type:          eventType,
		AppointmentID: appointment.ID.Hex(),
		PatientName:   appointment.PatientName,
		DoctorName:    appointment.DoctorName,
		ScheduledAt:   appointment.ScheduledAt,
		MeetingLink:   appointment.MeetingLink,
		OccurredAt:    uc.now().UTC(),
	}
	err := uc.EventPublisher.PublishAppointmentEvent(ctx, event)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publish error publishing appointment event",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
			zap.Error(err),
		)
	}
}

package controllers

import (
	"net/http"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	RequestTimeout     time.Duration
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, requestTimeout time.Duration) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		RequestTimeout:     requestTimeout,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateAppointment)
	if err := decodeJSON(r, request); err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	utils.BuildJSONResponse(w, constvars.StatusCreated, responses.AppointmentCreated{
		Success: true,
		ID:      appointment.ID,
		Message: constvars.CreateAppointmentSuccessMessage,
		Data:    appointment,
	})
}

func (ctrl *AppointmentController) CreateAppointmentWithMeeting(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("AppointmentController.CreateAppointmentWithMeeting called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateAppointment)
	if err := decodeJSON(r, request); err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointmentWithMeeting error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.CreateAppointmentWithMeeting(ctx, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointmentWithMeeting error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointmentWithMeeting succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingMeetingLinkKey, appointment.MeetingLink),
	)
	utils.BuildJSONResponse(w, constvars.StatusCreated, responses.AppointmentCreated{
		Success:     true,
		ID:          appointment.ID,
		MeetingLink: appointment.MeetingLink,
		Message:     constvars.CreateAppointmentWithMeetingSuccessMessage,
		Data:        appointment,
	})
}

func (ctrl *AppointmentController) FindAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	ctrl.Log.Info("AppointmentController.FindAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.FindAppointment(ctx, appointmentID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindAppointment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, appointment)
}

// AttachMeeting retries the meeting step for a booking that already exists.
func (ctrl *AppointmentController) AttachMeeting(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	ctrl.Log.Info("AppointmentController.AttachMeeting called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.AttachMeeting(ctx, appointmentID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.AttachMeeting error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, responses.AppointmentCreated{
		Success:     true,
		ID:          appointment.ID,
		MeetingLink: appointment.MeetingLink,
		Message:     constvars.AttachMeetingSuccessMessage,
		Data:        appointment,
	})
}

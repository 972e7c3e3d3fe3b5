package controllers

import (
	"net/http"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("DoctorController.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := ctrl.DoctorUsecase.ListDoctors(r.Context())
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, doctors)
}

func (ctrl *DoctorController) RequestConsultation(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("DoctorController.RequestConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Consultation)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	consultation, err := ctrl.DoctorUsecase.RequestConsultation(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("DoctorController.RequestConsultation error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildJSONResponse(w, constvars.StatusOK, consultation)
}

package controllers

import (
	"net/http"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type VideoController struct {
	Log          *zap.Logger
	VideoUsecase contracts.VideoUsecase
}

func NewVideoController(logger *zap.Logger, videoUsecase contracts.VideoUsecase) *VideoController {
	return &VideoController{
		Log:          logger,
		VideoUsecase: videoUsecase,
	}
}

func (ctrl *VideoController) StartCall(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("VideoController.StartCall called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.StartVideoCall)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	call, err := ctrl.VideoUsecase.StartCall(r.Context(), request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildJSONResponse(w, constvars.StatusOK, call)
}

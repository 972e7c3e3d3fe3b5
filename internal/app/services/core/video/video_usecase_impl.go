package video

import (
	"context"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type videoUsecase struct {
	Log *zap.Logger
}

func NewVideoUsecase(logger *zap.Logger) contracts.VideoUsecase {
	return &videoUsecase{Log: logger}
}

// StartCall is a stub; every call gets the same room.
func (uc *videoUsecase) StartCall(ctx context.Context, request *requests.StartVideoCall) (*responses.VideoCall, error) {
	uc.Log.Info("videoUsecase.StartCall called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
	)

	utils.SanitizeStartVideoCallRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	doctor := request.Doctor
	if doctor == "" {
		doctor = constvars.VideoDefaultDoctorName
	}
	return &responses.VideoCall{
		Status: constvars.ResponseSuccess,
		RoomID: constvars.VideoDefaultRoomID,
		Doctor: doctor,
	}, nil
}

package doctors

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

var doctorDirectory = []responses.Doctor{
	{ID: 1, Name: "Dr. Sharma", Speciality: "Cardiologist"},
	{ID: 2, Name: "Dr. Gupta", Speciality: "Dermatologist"},
}

type doctorUsecase struct {
	Log *zap.Logger
}

func NewDoctorUsecase(logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{Log: logger}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]responses.Doctor, error) {
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
	)

	doctors := make([]responses.Doctor, len(doctorDirectory))
	copy(doctors, doctorDirectory)
	return doctors, nil
}

// RequestConsultation echoes the request back; no booking is made.
func (uc *doctorUsecase) RequestConsultation(ctx context.Context, request *requests.Consultation) (*responses.Consultation, error) {
	uc.Log.Info("doctorUsecase.RequestConsultation called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
	)

	utils.SanitizeConsultationRequest(request)
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	return &responses.Consultation{
		Status:      constvars.ResponseSuccess,
		ConsultWith: request,
	}, nil
}

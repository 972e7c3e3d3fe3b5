package contracts

import (
	"context"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) ([]responses.Doctor, error)
	RequestConsultation(ctx context.Context, request *requests.Consultation) (*responses.Consultation, error)
}
